// Registry table: one entry per Option constant, in declaration order.

package ripgrep

// Options supported by the builder. The order here is the table order
// reported by Options().
const (
	OptAfterContext Option = iota
	OptAutoHybridRegex
	OptBeforeContext
	OptBinary
	OptBlockBuffered
	OptByteOffset
	OptCaseSensitive
	OptContext
	OptCount
	OptCountMatches
	OptCrlf
	OptDebug
	OptDfaSizeLimit
	OptEncoding
	OptEngine
	OptFile
	OptFiles
	OptFilesWithMatches
	OptFilesWithoutMatch
	OptFixedStrings
	OptFollow
	OptGlob
	OptHidden
	OptIglob
	OptIgnoreCase
	OptIgnoreFile
	OptIgnoreFileCaseInsensitive
	OptInvertMatch
	OptJSON
	OptLineBuffered
	OptLineNumber
	OptLineRegexp
	OptMaxColumns
	OptMaxColumnsPreview
	OptMaxCount
	OptMaxDepth
	OptMaxFilesize
	OptMmap
	OptMultiline
	OptMultilineDotall
	OptNoConfig
	OptNoFilename
	OptNoHeading
	OptNoIgnore
	OptNoIgnoreDot
	OptNoIgnoreGlobal
	OptNoIgnoreMessages
	OptNoIgnoreParent
	OptNoIgnoreVcs
	OptNoLineNumber
	OptNoMessages
	OptNoMmap
	OptNoPcre2Unicode
	OptNoUnicode
	OptNull
	OptNullData
	OptOneFileSystem
	OptOnlyMatching
	OptPassthru
	OptPathSeparator
	OptPcre2
	OptPcre2Version
	OptPre
	OptPreGlob
	OptPretty
	OptQuiet
	OptRegexSizeLimit
	OptRegexp
	OptReplace
	OptSearchZip
	OptSmartCase
	OptSort
	OptSortr
	OptStats
	OptText
	OptThreads
	OptTrim
	OptType
	OptTypeAdd
	OptTypeClear
	OptTypeList
	OptTypeNot
	OptUnrestricted
	OptVimgrep
	OptWithFilename
	OptWordRegexp
)

var registry = [...]OptionSpec{
	OptAfterContext: {
		Name:        "after-context",
		Flags:       []string{"--after-context"},
		Short:       'A',
		Arity:       ArityOne,
		Group:       GroupContext,
		Description: "Shows n lines after each match",
	},
	OptAutoHybridRegex: {
		Name:        "auto-hybrid-regex",
		Flags:       []string{"--auto-hybrid-regex"},
		Arity:       ArityNone,
		Group:       GroupEngine,
		Description: "Lets ripgrep pick a regex engine per pattern",
	},
	OptBeforeContext: {
		Name:        "before-context",
		Flags:       []string{"--before-context"},
		Short:       'B',
		Arity:       ArityOne,
		Group:       GroupContext,
		Description: "Shows n lines before each match",
	},
	OptBinary: {
		Name:        "binary",
		Flags:       []string{"--binary"},
		Arity:       ArityNone,
		Description: "Searches binary files instead of skipping them",
	},
	OptBlockBuffered: {
		Name:        "block-buffered",
		Flags:       []string{"--block-buffered"},
		Arity:       ArityNone,
		Group:       GroupBuffering,
		Description: "Forces block buffering of output",
	},
	OptByteOffset: {
		Name:        "byte-offset",
		Flags:       []string{"--byte-offset"},
		Short:       'b',
		Arity:       ArityNone,
		Description: "Prints the 0-based byte offset before each line",
	},
	OptCaseSensitive: {
		Name:        "case-sensitive",
		Flags:       []string{"--case-sensitive"},
		Short:       's',
		Arity:       ArityNone,
		Group:       GroupCase,
		Description: "Searches case sensitively",
	},
	OptContext: {
		Name:        "context",
		Flags:       []string{"--context"},
		Short:       'C',
		Arity:       ArityOne,
		Group:       GroupContext,
		Description: "Shows n lines before and after each match",
	},
	OptCount: {
		Name:        "count",
		Flags:       []string{"--count"},
		Short:       'c',
		Arity:       ArityNone,
		Group:       GroupOutput,
		Description: "Prints the number of matching lines per file",
	},
	OptCountMatches: {
		Name:        "count-matches",
		Flags:       []string{"--count-matches"},
		Arity:       ArityNone,
		Group:       GroupOutput,
		Description: "Prints the number of individual matches per file",
	},
	OptCrlf: {
		Name:        "crlf",
		Flags:       []string{"--crlf"},
		Arity:       ArityNone,
		Description: "Treats CRLF as a line terminator",
	},
	OptDebug: {
		Name:        "debug",
		Flags:       []string{"--debug"},
		Arity:       ArityNone,
		Description: "Shows debug messages on stderr",
	},
	OptDfaSizeLimit: {
		Name:        "dfa-size-limit",
		Flags:       []string{"--dfa-size-limit"},
		Arity:       ArityOne,
		Description: "Sets the upper size limit of the regex DFA, e.g. \"10M\"",
	},
	OptEncoding: {
		Name:        "encoding",
		Flags:       []string{"--encoding"},
		Short:       'E',
		Arity:       ArityOne,
		Description: "Sets the text encoding used for every searched file",
		validate:    validateEncoding,
	},
	OptEngine: {
		Name:        "engine",
		Flags:       []string{"--engine"},
		Arity:       ArityOne,
		Group:       GroupEngine,
		Description: "Selects the regex engine: default, pcre2 or auto",
		validate:    validateEngine,
	},
	OptFile: {
		Name:        "file",
		Flags:       []string{"--file"},
		Short:       'f',
		Arity:       ArityRepeatable,
		Description: "Reads patterns from the given file, one per line",
	},
	OptFiles: {
		Name:        "files",
		Flags:       []string{"--files"},
		Arity:       ArityNone,
		Group:       GroupOutput,
		Description: "Prints the files that would be searched without searching",
	},
	OptFilesWithMatches: {
		Name:        "files-with-matches",
		Flags:       []string{"--files-with-matches"},
		Short:       'l',
		Arity:       ArityNone,
		Group:       GroupOutput,
		Description: "Prints only the paths with at least one match",
	},
	OptFilesWithoutMatch: {
		Name:        "files-without-match",
		Flags:       []string{"--files-without-match"},
		Arity:       ArityNone,
		Group:       GroupOutput,
		Description: "Prints only the paths with no match",
	},
	OptFixedStrings: {
		Name:        "fixed-strings",
		Flags:       []string{"--fixed-strings"},
		Short:       'F',
		Arity:       ArityNone,
		Description: "Treats the pattern as a literal string",
	},
	OptFollow: {
		Name:        "follow",
		Flags:       []string{"--follow"},
		Short:       'L',
		Arity:       ArityNone,
		Description: "Follows symbolic links",
	},
	OptGlob: {
		Name:        "glob",
		Flags:       []string{"--glob"},
		Short:       'g',
		Arity:       ArityRepeatable,
		Description: "Includes or excludes files matching the glob",
		validate:    validateGlob,
	},
	OptHidden: {
		Name:        "hidden",
		Flags:       []string{"--hidden"},
		Arity:       ArityNone,
		Description: "Searches hidden files and directories",
	},
	OptIglob: {
		Name:        "iglob",
		Flags:       []string{"--iglob"},
		Arity:       ArityRepeatable,
		Description: "Is Glob with case insensitive matching",
		validate:    validateGlob,
	},
	OptIgnoreCase: {
		Name:        "ignore-case",
		Flags:       []string{"--ignore-case"},
		Short:       'i',
		Arity:       ArityNone,
		Group:       GroupCase,
		Description: "Searches case insensitively",
	},
	OptIgnoreFile: {
		Name:        "ignore-file",
		Flags:       []string{"--ignore-file"},
		Arity:       ArityRepeatable,
		Description: "Adds a gitignore formatted rules file",
	},
	OptIgnoreFileCaseInsensitive: {
		Name:        "ignore-file-case-insensitive",
		Flags:       []string{"--ignore-file-case-insensitive"},
		Arity:       ArityNone,
		Description: "Processes ignore files case insensitively",
	},
	OptInvertMatch: {
		Name:        "invert-match",
		Flags:       []string{"--invert-match"},
		Short:       'v',
		Arity:       ArityNone,
		Description: "Selects non-matching lines",
	},
	OptJSON: {
		Name:        "json",
		Flags:       []string{"--json"},
		Arity:       ArityNone,
		Group:       GroupOutput,
		Description: "Emits results as JSON Lines, enabling the record views",
	},
	OptLineBuffered: {
		Name:        "line-buffered",
		Flags:       []string{"--line-buffered"},
		Arity:       ArityNone,
		Group:       GroupBuffering,
		Description: "Forces line buffering of output",
	},
	OptLineNumber: {
		Name:        "line-number",
		Flags:       []string{"--line-number"},
		Short:       'n',
		Arity:       ArityNone,
		Group:       GroupLineNumber,
		Description: "Shows line numbers",
	},
	OptLineRegexp: {
		Name:        "line-regexp",
		Flags:       []string{"--line-regexp"},
		Short:       'x',
		Arity:       ArityNone,
		Description: "Only shows matches surrounded by line boundaries",
	},
	OptMaxColumns: {
		Name:        "max-columns",
		Flags:       []string{"--max-columns"},
		Short:       'M',
		Arity:       ArityOne,
		Description: "Omits lines longer than n bytes",
	},
	OptMaxColumnsPreview: {
		Name:        "max-columns-preview",
		Flags:       []string{"--max-columns-preview"},
		Arity:       ArityNone,
		Description: "Prints a preview of lines exceeding the column limit",
	},
	OptMaxCount: {
		Name:        "max-count",
		Flags:       []string{"--max-count"},
		Short:       'm',
		Arity:       ArityOne,
		Description: "Limits the number of matching lines per file",
	},
	OptMaxDepth: {
		Name:        "max-depth",
		Flags:       []string{"--max-depth"},
		Arity:       ArityOne,
		Description: "Limits directory traversal depth",
	},
	OptMaxFilesize: {
		Name:        "max-filesize",
		Flags:       []string{"--max-filesize"},
		Arity:       ArityOne,
		Description: "Ignores files larger than the size, e.g. \"50K\"",
	},
	OptMmap: {
		Name:        "mmap",
		Flags:       []string{"--mmap"},
		Arity:       ArityNone,
		Group:       GroupMmap,
		Description: "Searches using memory maps when possible",
	},
	OptMultiline: {
		Name:        "multiline",
		Flags:       []string{"--multiline"},
		Short:       'U',
		Arity:       ArityNone,
		Description: "Lets matches span multiple lines",
	},
	OptMultilineDotall: {
		Name:        "multiline-dotall",
		Flags:       []string{"--multiline-dotall"},
		Arity:       ArityNone,
		Description: "Lets '.' match line terminators in multiline mode",
	},
	OptNoConfig: {
		Name:        "no-config",
		Flags:       []string{"--no-config"},
		Arity:       ArityNone,
		Description: "Ignores ripgrep configuration files",
	},
	OptNoFilename: {
		Name:        "no-filename",
		Flags:       []string{"--no-filename"},
		Short:       'I',
		Arity:       ArityNone,
		Group:       GroupFilename,
		Description: "Never prints the file path",
	},
	OptNoHeading: {
		Name:        "no-heading",
		Flags:       []string{"--no-heading"},
		Arity:       ArityNone,
		Description: "Prints the path on every matching line",
	},
	OptNoIgnore: {
		Name:        "no-ignore",
		Flags:       []string{"--no-ignore"},
		Arity:       ArityNone,
		Description: "Does not respect ignore files",
	},
	OptNoIgnoreDot: {
		Name:        "no-ignore-dot",
		Flags:       []string{"--no-ignore-dot"},
		Arity:       ArityNone,
		Description: "Does not respect .ignore files",
	},
	OptNoIgnoreGlobal: {
		Name:        "no-ignore-global",
		Flags:       []string{"--no-ignore-global"},
		Arity:       ArityNone,
		Description: "Does not respect global ignore files",
	},
	OptNoIgnoreMessages: {
		Name:        "no-ignore-messages",
		Flags:       []string{"--no-ignore-messages"},
		Arity:       ArityNone,
		Description: "Suppresses ignore file parse errors",
	},
	OptNoIgnoreParent: {
		Name:        "no-ignore-parent",
		Flags:       []string{"--no-ignore-parent"},
		Arity:       ArityNone,
		Description: "Does not respect ignore files in parent directories",
	},
	OptNoIgnoreVcs: {
		Name:        "no-ignore-vcs",
		Flags:       []string{"--no-ignore-vcs"},
		Arity:       ArityNone,
		Description: "Does not respect version control ignore files",
	},
	OptNoLineNumber: {
		Name:        "no-line-number",
		Flags:       []string{"--no-line-number"},
		Short:       'N',
		Arity:       ArityNone,
		Group:       GroupLineNumber,
		Description: "Suppresses line numbers",
	},
	OptNoMessages: {
		Name:        "no-messages",
		Flags:       []string{"--no-messages"},
		Arity:       ArityNone,
		Description: "Suppresses file open and read errors",
	},
	OptNoMmap: {
		Name:        "no-mmap",
		Flags:       []string{"--no-mmap"},
		Arity:       ArityNone,
		Group:       GroupMmap,
		Description: "Never uses memory maps",
	},
	OptNoPcre2Unicode: {
		Name:        "no-pcre2-unicode",
		Flags:       []string{"--no-pcre2-unicode"},
		Arity:       ArityNone,
		Description: "Disables Unicode mode for PCRE2",
	},
	OptNoUnicode: {
		Name:        "no-unicode",
		Flags:       []string{"--no-unicode"},
		Arity:       ArityNone,
		Description: "Disables Unicode mode for every regex engine",
	},
	OptNull: {
		Name:        "null",
		Flags:       []string{"--null"},
		Arity:       ArityNone,
		Description: "Follows file paths with a NUL byte",
	},
	OptNullData: {
		Name:        "null-data",
		Flags:       []string{"--null-data"},
		Arity:       ArityNone,
		Description: "Uses NUL as the line terminator",
	},
	OptOneFileSystem: {
		Name:        "one-file-system",
		Flags:       []string{"--one-file-system"},
		Arity:       ArityNone,
		Description: "Does not cross file system boundaries",
	},
	OptOnlyMatching: {
		Name:        "only-matching",
		Flags:       []string{"--only-matching"},
		Short:       'o',
		Arity:       ArityNone,
		Description: "Prints only the matched parts of lines",
	},
	OptPassthru: {
		Name:        "passthru",
		Flags:       []string{"--passthru"},
		Arity:       ArityNone,
		Description: "Prints matching and non-matching lines",
	},
	OptPathSeparator: {
		Name:        "path-separator",
		Flags:       []string{"--path-separator"},
		Arity:       ArityOne,
		Description: "Sets the path separator used when printing paths",
	},
	OptPcre2: {
		Name:        "pcre2",
		Flags:       []string{"--pcre2"},
		Short:       'P',
		Arity:       ArityNone,
		Group:       GroupEngine,
		Description: "Uses the PCRE2 regex engine",
	},
	OptPcre2Version: {
		Name:        "pcre2-version",
		Flags:       []string{"--pcre2-version"},
		Arity:       ArityNone,
		Description: "Prints the PCRE2 version ripgrep was built with",
	},
	OptPre: {
		Name:        "pre",
		Flags:       []string{"--pre"},
		Arity:       ArityOne,
		Description: "Filters every file through the given command before searching",
	},
	OptPreGlob: {
		Name:        "pre-glob",
		Flags:       []string{"--pre-glob"},
		Arity:       ArityRepeatable,
		Description: "Restricts Pre to files matching the glob",
	},
	OptPretty: {
		Name:        "pretty",
		Flags:       []string{"--pretty"},
		Short:       'p',
		Arity:       ArityNone,
		Description: "Is an alias for --color always --heading --line-number",
	},
	OptQuiet: {
		Name:        "quiet",
		Flags:       []string{"--quiet"},
		Short:       'q',
		Arity:       ArityNone,
		Description: "Prints nothing and stops at the first match",
	},
	OptRegexSizeLimit: {
		Name:        "regex-size-limit",
		Flags:       []string{"--regex-size-limit"},
		Arity:       ArityOne,
		Description: "Sets the upper size limit of the compiled regex",
	},
	OptRegexp: {
		Name:        "regexp",
		Flags:       []string{"--regexp"},
		Short:       'e',
		Arity:       ArityRepeatable,
		Description: "Adds a pattern; useful for patterns starting with '-'",
	},
	OptReplace: {
		Name:        "replace",
		Flags:       []string{"--replace"},
		Short:       'r',
		Arity:       ArityOne,
		Description: "Replaces every match with the given text in the output",
	},
	OptSearchZip: {
		Name:        "search-zip",
		Flags:       []string{"--search-zip"},
		Short:       'z',
		Arity:       ArityNone,
		Description: "Searches inside compressed files",
	},
	OptSmartCase: {
		Name:        "smart-case",
		Flags:       []string{"--smart-case"},
		Short:       'S',
		Arity:       ArityNone,
		Group:       GroupCase,
		Description: "Is case insensitive unless the pattern has uppercase",
	},
	OptSort: {
		Name:        "sort",
		Flags:       []string{"--sort"},
		Arity:       ArityOne,
		Group:       GroupSort,
		Description: "Sorts results ascending by path, modified, accessed, created or none",
		validate:    validateSortKey,
	},
	OptSortr: {
		Name:        "sortr",
		Flags:       []string{"--sortr"},
		Arity:       ArityOne,
		Group:       GroupSort,
		Description: "Sorts results descending by path, modified, accessed, created or none",
		validate:    validateSortKey,
	},
	OptStats: {
		Name:        "stats",
		Flags:       []string{"--stats"},
		Arity:       ArityNone,
		Description: "Prints aggregate statistics after the search",
	},
	OptText: {
		Name:        "text",
		Flags:       []string{"--text"},
		Short:       'a',
		Arity:       ArityNone,
		Description: "Searches binary files as if they were text",
	},
	OptThreads: {
		Name:        "threads",
		Flags:       []string{"--threads"},
		Short:       'j',
		Arity:       ArityOne,
		Description: "Sets the approximate number of threads",
	},
	OptTrim: {
		Name:        "trim",
		Flags:       []string{"--trim"},
		Arity:       ArityNone,
		Description: "Trims leading whitespace from printed lines",
	},
	OptType: {
		Name:        "type",
		Flags:       []string{"--type"},
		Short:       't',
		Arity:       ArityRepeatable,
		Description: "Only searches files of the given type",
	},
	OptTypeAdd: {
		Name:        "type-add",
		Flags:       []string{"--type-add"},
		Arity:       ArityRepeatable,
		Description: "Adds a file type definition such as \"foo:*.foo\"",
	},
	OptTypeClear: {
		Name:        "type-clear",
		Flags:       []string{"--type-clear"},
		Arity:       ArityRepeatable,
		Description: "Clears the globs of a file type",
	},
	OptTypeList: {
		Name:        "type-list",
		Flags:       []string{"--type-list"},
		Arity:       ArityNone,
		Group:       GroupOutput,
		Description: "Lists the supported file types",
	},
	OptTypeNot: {
		Name:        "type-not",
		Flags:       []string{"--type-not"},
		Short:       'T',
		Arity:       ArityRepeatable,
		Description: "Skips files of the given type",
	},
	OptUnrestricted: {
		Name:        "unrestricted",
		Flags:       []string{"--unrestricted"},
		Short:       'u',
		Arity:       ArityNone,
		Description: "Reduces smart filtering; may be applied up to three times",
	},
	OptVimgrep: {
		Name:        "vimgrep",
		Flags:       []string{"--vimgrep"},
		Arity:       ArityNone,
		Group:       GroupOutput,
		Description: "Prints every match on its own line with column numbers",
	},
	OptWithFilename: {
		Name:        "with-filename",
		Flags:       []string{"--with-filename"},
		Short:       'H',
		Arity:       ArityNone,
		Group:       GroupFilename,
		Description: "Prints the file path for every match",
	},
	OptWordRegexp: {
		Name:        "word-regexp",
		Flags:       []string{"--word-regexp"},
		Short:       'w',
		Arity:       ArityNone,
		Description: "Only shows matches surrounded by word boundaries",
	},
}
