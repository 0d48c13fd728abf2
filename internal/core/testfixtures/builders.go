package testfixtures

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"sync"

	"pyroxene.dev/launcher/internal/core/desktop"
)

// EntryBuilder provides a builder pattern for creating test entries
type EntryBuilder struct {
	fields desktop.Fields
	source string
}

// NewEntryBuilder creates a new EntryBuilder with sensible defaults
func NewEntryBuilder() *EntryBuilder {
	return &EntryBuilder{
		fields: desktop.Fields{
			Name: "Test App",
			Exec: "test-app %U",
		},
	}
}

// WithName sets the display name
func (b *EntryBuilder) WithName(name string) *EntryBuilder {
	b.fields.Name = name
	return b
}

// WithExec sets the command line
func (b *EntryBuilder) WithExec(exec string) *EntryBuilder {
	b.fields.Exec = exec
	return b
}

// WithIcon sets the icon
func (b *EntryBuilder) WithIcon(icon string) *EntryBuilder {
	b.fields.Icon = icon
	return b
}

// WithCategories sets the category identifiers
func (b *EntryBuilder) WithCategories(categories ...string) *EntryBuilder {
	b.fields.Categories = categories
	return b
}

// WithKeywords sets the keywords
func (b *EntryBuilder) WithKeywords(keywords ...string) *EntryBuilder {
	b.fields.Keywords = keywords
	return b
}

// WithTerminal marks the entry as a terminal program
func (b *EntryBuilder) WithTerminal(terminal bool) *EntryBuilder {
	b.fields.Terminal = terminal
	return b
}

// WithPath sets the working directory
func (b *EntryBuilder) WithPath(path string) *EntryBuilder {
	b.fields.Path = path
	return b
}

// WithSource sets the descriptor file path
func (b *EntryBuilder) WithSource(source string) *EntryBuilder {
	b.source = source
	return b
}

// Build creates the entry
func (b *EntryBuilder) Build() (*desktop.Entry, error) {
	entry, err := desktop.NewEntry(b.fields)
	if err != nil {
		return nil, err
	}
	if b.source != "" {
		entry = entry.WithSource(b.source)
	}
	return entry, nil
}

// MustBuild creates the entry and panics on error
func (b *EntryBuilder) MustBuild() *desktop.Entry {
	entry, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build entry: %v", err))
	}
	return entry
}

// Named creates an entry per name, all tagged with the given categories
func Named(categories []string, names ...string) []*desktop.Entry {
	entries := make([]*desktop.Entry, len(names))
	for i, name := range names {
		entries[i] = NewEntryBuilder().
			WithName(name).
			WithExec(strings.ToLower(strings.ReplaceAll(name, " ", "-"))).
			WithCategories(categories...).
			MustBuild()
	}
	return entries
}

// SampleEntries returns a small, realistic set of entries
func SampleEntries() []*desktop.Entry {
	return []*desktop.Entry{
		NewEntryBuilder().WithName("Firefox").WithExec("firefox %u").WithIcon("firefox").
			WithCategories("Network", "WebBrowser").MustBuild(),
		NewEntryBuilder().WithName("Files").WithExec("nautilus --new-window %U").WithIcon("org.gnome.Nautilus").
			WithCategories("GNOME", "GTK", "Utility", "Core", "FileManager").MustBuild(),
		NewEntryBuilder().WithName("Terminal").WithExec("gnome-terminal").WithIcon("utilities-terminal").
			WithCategories("GNOME", "GTK", "System", "TerminalEmulator").MustBuild(),
		NewEntryBuilder().WithName("GIMP").WithExec("gimp-2.10 %U").WithIcon("gimp").
			WithCategories("Graphics", "2DGraphics", "RasterGraphics").MustBuild(),
		NewEntryBuilder().WithName("htop").WithExec("htop").WithIcon("htop").WithTerminal(true).
			WithCategories("System", "Monitor", "ConsoleOnly").MustBuild(),
	}
}

// RandomEntry creates an entry with a random ASCII name
func RandomEntry(rng *rand.Rand) *desktop.Entry {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ "
	n := 1 + rng.Intn(12)
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(letters[rng.Intn(len(letters))])
	}
	return NewEntryBuilder().WithName(sb.String()).MustBuild()
}

// DescriptorBuilder assembles descriptor file text line by line
type DescriptorBuilder struct {
	lines []string
}

// NewDescriptor starts a descriptor with a [Desktop Entry] header
func NewDescriptor() *DescriptorBuilder {
	return &DescriptorBuilder{lines: []string{"[" + desktop.SectionDesktopEntry + "]"}}
}

// Section appends a section header
func (b *DescriptorBuilder) Section(name string) *DescriptorBuilder {
	b.lines = append(b.lines, "["+name+"]")
	return b
}

// Key appends a Key=Value line
func (b *DescriptorBuilder) Key(key, value string) *DescriptorBuilder {
	b.lines = append(b.lines, key+"="+value)
	return b
}

// Line appends a raw line
func (b *DescriptorBuilder) Line(line string) *DescriptorBuilder {
	b.lines = append(b.lines, line)
	return b
}

// Application appends Type, Name and Exec lines
func (b *DescriptorBuilder) Application(name, exec string) *DescriptorBuilder {
	return b.Key("Type", "Application").Key("Name", name).Key("Exec", exec)
}

// String returns the descriptor text
func (b *DescriptorBuilder) String() string {
	return strings.Join(b.lines, "\n") + "\n"
}

// MemorySource serves descriptor contents from memory
type MemorySource struct {
	mu    sync.Mutex
	files map[string]string
	reads map[string]int
}

// NewMemorySource creates a source over path -> content
func NewMemorySource(files map[string]string) *MemorySource {
	return &MemorySource{files: files, reads: make(map[string]int)}
}

// ReadFile implements ports.Source
func (s *MemorySource) ReadFile(path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads[path]++
	content, ok := s.files[path]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return []byte(content), nil
}

// Reads returns how many times path was read
func (s *MemorySource) Reads(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads[path]
}

// Rejection is one recorded report
type Rejection struct {
	Path   string
	Reason desktop.Reason
}

// RecordingReporter captures reports for assertions
type RecordingReporter struct {
	mu          sync.Mutex
	Rejections  []Rejection
	Directories []string
}

// Reject implements ports.Reporter
func (r *RecordingReporter) Reject(path string, reason desktop.Reason, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Rejections = append(r.Rejections, Rejection{Path: path, Reason: reason})
}

// DirectoryError implements ports.Reporter
func (r *RecordingReporter) DirectoryError(path string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Directories = append(r.Directories, path)
}

// Names returns the names of entries in order
func Names(entries []*desktop.Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names
}
