// Package ignorefile merges gitignore-style files that follow a light
// structural convention: "#@ Title" lines open sections, the first comment
// line after a section header or a rule opens a named block, and every other
// line is either a comment inside the current block or a rule.
//
// The pipeline is Tokenize → Parse → Merger.Merge → Compile. Every stage is
// a pure function of its inputs, so all of them are safe for concurrent use.
package ignorefile

// Options configures MergeFiles.
type Options struct {
	Sort          bool
	MergeSections bool
	MergeBlocks   bool
}

// DefaultOptions sorts the output and merges both sections and blocks.
func DefaultOptions() Options {
	return Options{Sort: true, MergeSections: true, MergeBlocks: true}
}

// MergeOptions returns the merge stage subset of o.
func (o Options) MergeOptions() MergeOptions {
	return MergeOptions{MergeSections: o.MergeSections, MergeBlocks: o.MergeBlocks}
}

// CompileOptions returns the compile stage subset of o.
func (o Options) CompileOptions() CompileOptions {
	return CompileOptions{Sort: o.Sort}
}

// MergeDocuments parses every source and merges them, in order, into a new
// Document.
func MergeDocuments(opts Options, sources ...string) *Document {
	return NewMerger(opts.MergeOptions()).MergeText(&Document{}, sources...)
}

// MergeFiles merges the given ignore-file contents and renders the result.
func MergeFiles(opts Options, sources ...string) string {
	return Compile(MergeDocuments(opts, sources...), opts.CompileOptions())
}
