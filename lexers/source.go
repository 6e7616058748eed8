package lexers

import "strings"

type Source struct {
	Name    string
	Content string
	Lines   []string
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(lineBreaks.Replace(content), "\n"),
	}
}
