// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	NoJDKFoundId Id = iota + 1
	ConfigLoadFailedId
	UnsupportedPlatformId
	SourceScanFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Markdown returns the message followed by a "See also" list of links.
func (i *Issue) Markdown() string {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also:\n")
		for _, link := range i.extLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return md.String()
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.Markdown(), stylePath)
}

var (
	render = glamour.Render

	noJDKFoundIssue = &Issue{
		id: NoJDKFoundId,
		mdMsg: `
# No JDK found!

None of the locations listed above contains a usable JDK. A usable JDK home
has an ` + "`include`" + ` directory with the JNI headers; a runtime-only
installation (JRE) is not enough.

## Search order:
1. ` + "`$JAVA_HOME`" + `
2. The Windows registry (Windows only)
3. The platform's usual install locations
4. ` + "`search_paths`" + ` from your config file

## Things you can try:
- Point JAVA_HOME at the JDK installation directory:
~~~
$ export JAVA_HOME=/usr/lib/jvm/java-17-openjdk
~~~

- Install a full JDK, not just a JRE:
  - Debian/Ubuntu: ` + "`sudo apt install default-jdk`" + `
  - Fedora: ` + "`sudo dnf install java-17-openjdk-devel`" + `
  - macOS: ` + "`brew install --cask temurin`" + `

- Add a non-standard install root to your config:
~~~cue
search_paths: ["/opt/jdks/*"]
~~~

- See every location and why it was rejected:
~~~
$ jdkprobe candidates
~~~`,
		extLinks: []HttpLink{"https://adoptium.net/"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your config file could not be read or does not match the expected schema.

## Things you can try:
- Print where jdkprobe looks for its config:
~~~
$ jdkprobe config path
~~~

- Write a fresh default config and edit from there:
~~~
$ jdkprobe config init --force
~~~

- Check the error message above for the offending field. Valid values:
  - ` + "`platform`" + `: "auto", "windows", "darwin", "linux", "cygwin"
  - ` + "`output.format`" + `: "path", "json", "yaml", "toml", "flags"`,
	}

	unsupportedPlatformIssue = &Issue{
		id: UnsupportedPlatformId,
		mdMsg: `
# Unsupported platform!

The platform you asked for is not one jdkprobe knows how to search.

## Supported platforms:
- **windows** (alias: win32)
- **darwin** (aliases: macos, osx)
- **linux** (alias: posix)
- **cygwin**

## Things you can try:
- Let jdkprobe detect the host:
~~~
$ jdkprobe --platform auto
~~~`,
	}

	sourceScanFailedIssue = &Issue{
		id: SourceScanFailedId,
		mdMsg: `
# Failed to scan native sources!

A directory of the native source tree exists but could not be read.

## Things you can try:
- Check the permissions of the directory named above
- Run jdkprobe from the project root, or set absolute paths:
~~~cue
native: {
	common_dir:  "/src/project/native/common"
	binding_dir: "/src/project/native/python"
}
~~~`,
	}

	issues = map[Id]*Issue{
		noJDKFoundIssue.Id():          noJDKFoundIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		unsupportedPlatformIssue.Id(): unsupportedPlatformIssue,
		sourceScanFailedIssue.Id():    sourceScanFailedIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	values := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		values = append(values, i)
	}
	slices.SortFunc(values, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return values
}

func Get(id Id) *Issue {
	return issues[id]
}
