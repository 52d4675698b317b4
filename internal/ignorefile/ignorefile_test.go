package ignorefile

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	nodeIgnore = `#@ node
# Logs
logs
*.log
npm-debug.log*

# Dependency directories
node_modules/
`

	osxIgnore = `#@ OSX
# General
.DS_Store
.AppleDouble

# Thumbnails
._*
`

	localIgnore = `# Logs
*.log
local.log

#@ node
# Logs
*.log
yarn-error.log
`
)

func TestMergeFiles_DedupExample(t *testing.T) {
	got := MergeFiles(DefaultOptions(), "#@ A\n# b\nfoo\n", "#@ A\n# b\nfoo\nbar\n")

	assert.Equal(t, "#@ A \n# b\nfoo\nbar", got)
}

func TestMergeFiles_Sorted(t *testing.T) {
	got := MergeFiles(DefaultOptions(), osxIgnore, nodeIgnore, localIgnore)

	want := "#@\n# Logs\n*.log\nlocal.log\n\n" +
		"#@ node \n# Dependency directories\nnode_modules/\n\n" +
		"# Logs\nlogs\n*.log\nnpm-debug.log*\nyarn-error.log\n\n" +
		"#@ OSX \n# General\n.DS_Store\n.AppleDouble\n\n# Thumbnails\n._*"
	assert.Equal(t, want, got)
}

func TestMergeFiles_Unsorted(t *testing.T) {
	opts := DefaultOptions()
	opts.Sort = false

	got := MergeFiles(opts, osxIgnore, nodeIgnore)

	want := "#@ OSX \n# General\n.DS_Store\n.AppleDouble\n\n# Thumbnails\n._*\n\n" +
		"#@ node \n# Logs\nlogs\n*.log\nnpm-debug.log*\n\n# Dependency directories\nnode_modules/"
	assert.Equal(t, want, got)
}

func TestMergeFiles_MergeSectionsDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.MergeSections = false

	got := MergeFiles(opts, "#@ A\nfoo\n", "#@ A\nbar\n")

	assert.Equal(t, "#@ A \nfoo\n\n#@ A \nbar", got)
}

func TestMergeFiles_SelfMergeIsIdempotent(t *testing.T) {
	once := MergeFiles(DefaultOptions(), nodeIgnore)
	twice := MergeFiles(DefaultOptions(), nodeIgnore, nodeIgnore)

	assert.Equal(t, once, twice)
}

func TestMergeFiles_OutputMergesWithItsInputs(t *testing.T) {
	merged := MergeFiles(DefaultOptions(), nodeIgnore, osxIgnore)
	again := MergeFiles(DefaultOptions(), merged, nodeIgnore, osxIgnore)

	assert.Equal(t, merged, again)
}

func TestMergeFiles_NoSources(t *testing.T) {
	assert.Empty(t, MergeFiles(DefaultOptions()))
}

func TestMergeFiles_ConcurrentCalls(t *testing.T) {
	want := MergeFiles(DefaultOptions(), nodeIgnore, osxIgnore, localIgnore)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = MergeFiles(DefaultOptions(), nodeIgnore, osxIgnore, localIgnore)
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestOptions_Split(t *testing.T) {
	opts := Options{Sort: true, MergeSections: false, MergeBlocks: true}

	assert.Equal(t, MergeOptions{MergeSections: false, MergeBlocks: true}, opts.MergeOptions())
	assert.Equal(t, CompileOptions{Sort: true}, opts.CompileOptions())
}
