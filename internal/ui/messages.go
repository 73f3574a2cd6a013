package ui

import (
	"fmt"
	"strings"
)

// Banner describes the running server for the startup message.
type Banner struct {
	URL           string
	Directory     string
	Template      string
	FragmentParam string
}

// Render returns the startup message printed before serving.
func (b Banner) Render() string {
	var sb strings.Builder
	sb.WriteString(styles.Title("authcb") + "\n")
	sb.WriteString(styles.OK("Auth server running at "+b.URL) + "\n")
	fmt.Fprintf(&sb, "  Serving files from: %s\n", b.Directory)
	fmt.Fprintf(&sb, "  Callback page:      %s\n", b.Template)
	if b.FragmentParam != "" {
		fmt.Fprintf(&sb, "  Fragment parameter: ?%s=\n", b.FragmentParam)
	}
	sb.WriteString(styles.Help("The auth provider redirects here after email confirmation. Press Ctrl+C to stop.") + "\n")
	return sb.String()
}

// BrowserOpened reports a successful browser launch.
func BrowserOpened() string {
	return styles.OK("Opened browser automatically") + "\n"
}

// BrowserFailed reports that the user has to open url manually.
func BrowserFailed(url string) string {
	return styles.Warn("Could not open browser automatically. Open "+url) + "\n"
}

// Stopped is printed once the server has shut down.
func Stopped() string {
	return styles.Help("Server stopped") + "\n"
}

// TemplateCheck renders the result of a callback template inspection.
func TemplateCheck(path string, size, scripts, occurrences int, problems []error) string {
	var sb strings.Builder
	sb.WriteString(styles.Title("Callback template") + "\n")
	fmt.Fprintf(&sb, "  Path:         %s\n", path)
	fmt.Fprintf(&sb, "  Size:         %d bytes\n", size)
	fmt.Fprintf(&sb, "  Scripts:      %d\n", scripts)
	fmt.Fprintf(&sb, "  Placeholders: %d\n", occurrences)

	if len(problems) == 0 {
		sb.WriteString(styles.OK("Fragment placeholder found") + "\n")
		return sb.String()
	}
	for _, p := range problems {
		sb.WriteString(styles.Err(p.Error()) + "\n")
	}
	return sb.String()
}
