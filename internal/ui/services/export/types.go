package export

// Format selects the export text representation
type Format int

const (
	FormatPlain Format = iota
	FormatMarkdown
)

func (f Format) String() string {
	if f == FormatMarkdown {
		return "markdown"
	}
	return "plain"
}

// Entry is one resolved item of a selection
type Entry struct {
	Index int
	Link  string
	Label string
}

// Request is an export ready to be written to the clipboard
type Request struct {
	Format    Format
	Text      string
	Indices   []int
	FromMarks bool
	Notice    string
}

// Event types
type ExportCompletedEvent struct {
	Format    Format
	Count     int
	FromMarks bool
}
