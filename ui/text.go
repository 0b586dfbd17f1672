package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/logrusorgru/aurora"
)

const (
	// Keys longer than this only pad the other keys so much
	maxKeyPadding  = 50
	paragraphWidth = 60
)

func Color(w io.Writer) aurora.Aurora {
	return aurora.NewAurora(true)
}

func Bold(text string) string {
	color := Color(os.Stdout)
	return color.Sprintf(color.Bold(text))
}

func RedText(text string) aurora.Value {
	return Color(os.Stdout).Red(text)
}

func GreenText(text string) aurora.Value {
	return Color(os.Stdout).Green(text)
}

func BlueText(text string) aurora.Value {
	return Color(os.Stdout).Blue(text)
}

func YellowText(text string) aurora.Value {
	return Color(os.Stdout).Yellow(text)
}

func MagentaText(text string) aurora.Value {
	return Color(os.Stdout).Magenta(text)
}

func GrayText(text string) aurora.Value {
	return Color(os.Stdout).Gray(12, text)
}

// Heading renders an underlined bold title followed by a newline
func Heading(text string) string {
	color := Color(os.Stdout)
	return color.Sprintf("%s\n", color.Bold(color.Underline(text)))
}

// KeyValues renders a map as aligned "key: value" lines, alphabetically
func KeyValues(kvs map[string]string) string {
	if len(kvs) == 0 {
		return ""
	}

	keys := make([]string, 0, len(kvs))
	longest := 0
	for k := range kvs {
		keys = append(keys, k)
		if len(k) > longest {
			longest = len(k)
		}
	}
	sort.Strings(keys)

	if longest > maxKeyPadding {
		longest = maxKeyPadding
	}

	var b strings.Builder
	for _, k := range keys {
		pad := longest - len(k) + 1
		if pad < 1 {
			pad = 1
		}
		fmt.Fprintf(&b, "%s:%s%s\n", k, strings.Repeat(" ", pad), kvs[k])
	}
	return b.String()
}

// UnorderedList renders items as "- item" lines
func UnorderedList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	return b.String()
}

// OrderedList renders items as "1) item" lines
func OrderedList(items []string) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d) %s\n", i+1, item)
	}
	return b.String()
}

// Truncate shortens a string to about length characters, keeping the head and
// tail on either side of an ellipsis
func Truncate(text string, length int) string {
	if len(text) <= length {
		return text
	}

	keep := length - 3
	if keep < 2 {
		keep = 2
	}
	head := (keep + 1) / 2
	tail := keep / 2

	return text[:head] + "..." + text[len(text)-tail:]
}

// Paragraph greedily wraps text at paragraphWidth characters
func Paragraph(text string) string {
	var b strings.Builder
	line := ""
	for _, word := range strings.Fields(text) {
		if line == "" {
			line = word
			continue
		}
		if len(line)+1+len(word) > paragraphWidth {
			b.WriteString(line + "\n")
			line = word
			continue
		}
		line += " " + word
	}
	if line != "" {
		b.WriteString(line + "\n")
	}
	return b.String()
}

// PrefixLines prepends prefix to every line of text
func PrefixLines(text string, prefix string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintf(&b, "%s%s\n", prefix, line)
	}
	return b.String()
}
