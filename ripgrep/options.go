// Fluent option methods, one per registry entry.
//
// Each method applies its option and returns the same *Search. The first
// failure is kept and reported by Err and Run; later calls are no-ops.

package ripgrep

import "strconv"

// AfterContext (-A) shows n lines after each match.
func (s *Search) AfterContext(n int) *Search { return s.apply(OptAfterContext, strconv.Itoa(n)) }

// AutoHybridRegex lets ripgrep pick a regex engine per pattern.
func (s *Search) AutoHybridRegex() *Search { return s.apply(OptAutoHybridRegex) }

// BeforeContext (-B) shows n lines before each match.
func (s *Search) BeforeContext(n int) *Search { return s.apply(OptBeforeContext, strconv.Itoa(n)) }

// Binary searches binary files instead of skipping them.
func (s *Search) Binary() *Search { return s.apply(OptBinary) }

// BlockBuffered forces block buffering of output.
func (s *Search) BlockBuffered() *Search { return s.apply(OptBlockBuffered) }

// ByteOffset (-b) prints the 0-based byte offset before each line.
func (s *Search) ByteOffset() *Search { return s.apply(OptByteOffset) }

// CaseSensitive (-s) searches case sensitively.
func (s *Search) CaseSensitive() *Search { return s.apply(OptCaseSensitive) }

// Context (-C) shows n lines before and after each match.
func (s *Search) Context(n int) *Search { return s.apply(OptContext, strconv.Itoa(n)) }

// Count (-c) prints the number of matching lines per file.
func (s *Search) Count() *Search { return s.apply(OptCount) }

// CountMatches prints the number of individual matches per file.
func (s *Search) CountMatches() *Search { return s.apply(OptCountMatches) }

// Crlf treats CRLF as a line terminator.
func (s *Search) Crlf() *Search { return s.apply(OptCrlf) }

// Debug shows debug messages on stderr.
func (s *Search) Debug() *Search { return s.apply(OptDebug) }

// DfaSizeLimit sets the upper size limit of the regex DFA, e.g. "10M".
func (s *Search) DfaSizeLimit(size string) *Search { return s.apply(OptDfaSizeLimit, size) }

// Encoding (-E) sets the text encoding used for every searched file.
func (s *Search) Encoding(label string) *Search { return s.apply(OptEncoding, label) }

// Engine selects the regex engine: default, pcre2 or auto.
func (s *Search) Engine(engine string) *Search { return s.apply(OptEngine, engine) }

// File (-f) reads patterns from the given file, one per line.
func (s *Search) File(path string) *Search { return s.apply(OptFile, path) }

// Files prints the files that would be searched without searching.
func (s *Search) Files() *Search { return s.apply(OptFiles) }

// FilesWithMatches (-l) prints only the paths with at least one match.
func (s *Search) FilesWithMatches() *Search { return s.apply(OptFilesWithMatches) }

// FilesWithoutMatch prints only the paths with no match.
func (s *Search) FilesWithoutMatch() *Search { return s.apply(OptFilesWithoutMatch) }

// FixedStrings (-F) treats the pattern as a literal string.
func (s *Search) FixedStrings() *Search { return s.apply(OptFixedStrings) }

// Follow (-L) follows symbolic links.
func (s *Search) Follow() *Search { return s.apply(OptFollow) }

// Glob (-g) includes or excludes files matching the glob.
func (s *Search) Glob(glob string) *Search { return s.apply(OptGlob, glob) }

// Hidden searches hidden files and directories.
func (s *Search) Hidden() *Search { return s.apply(OptHidden) }

// Iglob is Glob with case insensitive matching.
func (s *Search) Iglob(glob string) *Search { return s.apply(OptIglob, glob) }

// IgnoreCase (-i) searches case insensitively.
func (s *Search) IgnoreCase() *Search { return s.apply(OptIgnoreCase) }

// IgnoreFile adds a gitignore formatted rules file.
func (s *Search) IgnoreFile(path string) *Search { return s.apply(OptIgnoreFile, path) }

// IgnoreFileCaseInsensitive processes ignore files case insensitively.
func (s *Search) IgnoreFileCaseInsensitive() *Search { return s.apply(OptIgnoreFileCaseInsensitive) }

// InvertMatch (-v) selects non-matching lines.
func (s *Search) InvertMatch() *Search { return s.apply(OptInvertMatch) }

// JSON emits results as JSON Lines, enabling the record views.
func (s *Search) JSON() *Search { return s.apply(OptJSON) }

// LineBuffered forces line buffering of output.
func (s *Search) LineBuffered() *Search { return s.apply(OptLineBuffered) }

// LineNumber (-n) shows line numbers.
func (s *Search) LineNumber() *Search { return s.apply(OptLineNumber) }

// LineRegexp (-x) only shows matches surrounded by line boundaries.
func (s *Search) LineRegexp() *Search { return s.apply(OptLineRegexp) }

// MaxColumns (-M) omits lines longer than n bytes.
func (s *Search) MaxColumns(n int) *Search { return s.apply(OptMaxColumns, strconv.Itoa(n)) }

// MaxColumnsPreview prints a preview of lines exceeding the column limit.
func (s *Search) MaxColumnsPreview() *Search { return s.apply(OptMaxColumnsPreview) }

// MaxCount (-m) limits the number of matching lines per file.
func (s *Search) MaxCount(n int) *Search { return s.apply(OptMaxCount, strconv.Itoa(n)) }

// MaxDepth limits directory traversal depth.
func (s *Search) MaxDepth(n int) *Search { return s.apply(OptMaxDepth, strconv.Itoa(n)) }

// MaxFilesize ignores files larger than the size, e.g. "50K".
func (s *Search) MaxFilesize(size string) *Search { return s.apply(OptMaxFilesize, size) }

// Mmap searches using memory maps when possible.
func (s *Search) Mmap() *Search { return s.apply(OptMmap) }

// Multiline (-U) lets matches span multiple lines.
func (s *Search) Multiline() *Search { return s.apply(OptMultiline) }

// MultilineDotall lets '.' match line terminators in multiline mode.
func (s *Search) MultilineDotall() *Search { return s.apply(OptMultilineDotall) }

// NoConfig ignores ripgrep configuration files.
func (s *Search) NoConfig() *Search { return s.apply(OptNoConfig) }

// NoFilename (-I) never prints the file path.
func (s *Search) NoFilename() *Search { return s.apply(OptNoFilename) }

// NoHeading prints the path on every matching line.
func (s *Search) NoHeading() *Search { return s.apply(OptNoHeading) }

// NoIgnore does not respect ignore files.
func (s *Search) NoIgnore() *Search { return s.apply(OptNoIgnore) }

// NoIgnoreDot does not respect .ignore files.
func (s *Search) NoIgnoreDot() *Search { return s.apply(OptNoIgnoreDot) }

// NoIgnoreGlobal does not respect global ignore files.
func (s *Search) NoIgnoreGlobal() *Search { return s.apply(OptNoIgnoreGlobal) }

// NoIgnoreMessages suppresses ignore file parse errors.
func (s *Search) NoIgnoreMessages() *Search { return s.apply(OptNoIgnoreMessages) }

// NoIgnoreParent does not respect ignore files in parent directories.
func (s *Search) NoIgnoreParent() *Search { return s.apply(OptNoIgnoreParent) }

// NoIgnoreVcs does not respect version control ignore files.
func (s *Search) NoIgnoreVcs() *Search { return s.apply(OptNoIgnoreVcs) }

// NoLineNumber (-N) suppresses line numbers.
func (s *Search) NoLineNumber() *Search { return s.apply(OptNoLineNumber) }

// NoMessages suppresses file open and read errors.
func (s *Search) NoMessages() *Search { return s.apply(OptNoMessages) }

// NoMmap never uses memory maps.
func (s *Search) NoMmap() *Search { return s.apply(OptNoMmap) }

// NoPcre2Unicode disables Unicode mode for PCRE2.
func (s *Search) NoPcre2Unicode() *Search { return s.apply(OptNoPcre2Unicode) }

// NoUnicode disables Unicode mode for every regex engine.
func (s *Search) NoUnicode() *Search { return s.apply(OptNoUnicode) }

// Null follows file paths with a NUL byte.
func (s *Search) Null() *Search { return s.apply(OptNull) }

// NullData uses NUL as the line terminator.
func (s *Search) NullData() *Search { return s.apply(OptNullData) }

// OneFileSystem does not cross file system boundaries.
func (s *Search) OneFileSystem() *Search { return s.apply(OptOneFileSystem) }

// OnlyMatching (-o) prints only the matched parts of lines.
func (s *Search) OnlyMatching() *Search { return s.apply(OptOnlyMatching) }

// Passthru prints matching and non-matching lines.
func (s *Search) Passthru() *Search { return s.apply(OptPassthru) }

// PathSeparator sets the path separator used when printing paths.
func (s *Search) PathSeparator(sep string) *Search { return s.apply(OptPathSeparator, sep) }

// Pcre2 (-P) uses the PCRE2 regex engine.
func (s *Search) Pcre2() *Search { return s.apply(OptPcre2) }

// Pcre2Version prints the PCRE2 version ripgrep was built with.
func (s *Search) Pcre2Version() *Search { return s.apply(OptPcre2Version) }

// Pre filters every file through the given command before searching.
func (s *Search) Pre(command string) *Search { return s.apply(OptPre, command) }

// PreGlob restricts Pre to files matching the glob.
func (s *Search) PreGlob(glob string) *Search { return s.apply(OptPreGlob, glob) }

// Pretty (-p) is an alias for --color always --heading --line-number.
func (s *Search) Pretty() *Search { return s.apply(OptPretty) }

// Quiet (-q) prints nothing and stops at the first match.
func (s *Search) Quiet() *Search { return s.apply(OptQuiet) }

// RegexSizeLimit sets the upper size limit of the compiled regex.
func (s *Search) RegexSizeLimit(size string) *Search { return s.apply(OptRegexSizeLimit, size) }

// Regexp (-e) adds a pattern; useful for patterns starting with '-'.
func (s *Search) Regexp(pattern string) *Search { return s.apply(OptRegexp, pattern) }

// Replace (-r) replaces every match with the given text in the output.
func (s *Search) Replace(replacement string) *Search { return s.apply(OptReplace, replacement) }

// SearchZip (-z) searches inside compressed files.
func (s *Search) SearchZip() *Search { return s.apply(OptSearchZip) }

// SmartCase (-S) is case insensitive unless the pattern has uppercase.
func (s *Search) SmartCase() *Search { return s.apply(OptSmartCase) }

// Sort sorts results ascending by path, modified, accessed, created or none.
func (s *Search) Sort(key string) *Search { return s.apply(OptSort, key) }

// Sortr sorts results descending by path, modified, accessed, created or none.
func (s *Search) Sortr(key string) *Search { return s.apply(OptSortr, key) }

// Stats prints aggregate statistics after the search.
func (s *Search) Stats() *Search { return s.apply(OptStats) }

// Text (-a) searches binary files as if they were text.
func (s *Search) Text() *Search { return s.apply(OptText) }

// Threads (-j) sets the approximate number of threads.
func (s *Search) Threads(n int) *Search { return s.apply(OptThreads, strconv.Itoa(n)) }

// Trim trims leading whitespace from printed lines.
func (s *Search) Trim() *Search { return s.apply(OptTrim) }

// Type (-t) only searches files of the given type.
func (s *Search) Type(name string) *Search { return s.apply(OptType, name) }

// TypeAdd adds a file type definition such as "foo:*.foo".
func (s *Search) TypeAdd(def string) *Search { return s.apply(OptTypeAdd, def) }

// TypeClear clears the globs of a file type.
func (s *Search) TypeClear(name string) *Search { return s.apply(OptTypeClear, name) }

// TypeList lists the supported file types.
func (s *Search) TypeList() *Search { return s.apply(OptTypeList) }

// TypeNot (-T) skips files of the given type.
func (s *Search) TypeNot(name string) *Search { return s.apply(OptTypeNot, name) }

// Unrestricted (-u) reduces smart filtering; may be applied up to three times.
func (s *Search) Unrestricted() *Search { return s.apply(OptUnrestricted) }

// Vimgrep prints every match on its own line with column numbers.
func (s *Search) Vimgrep() *Search { return s.apply(OptVimgrep) }

// WithFilename (-H) prints the file path for every match.
func (s *Search) WithFilename() *Search { return s.apply(OptWithFilename) }

// WordRegexp (-w) only shows matches surrounded by word boundaries.
func (s *Search) WordRegexp() *Search { return s.apply(OptWordRegexp) }
