package runner

import "strings"

// Suite is the object-model node for one announced test group. Ownership
// flows parent→child through Suites; Parent is navigational only.
type Suite struct {
	Title  string
	Parent *Suite
	Suites []*Suite
	Tests  []*Test
}

// FullTitle joins the ancestor titles and this suite's title with spaces.
func (s *Suite) FullTitle() string {
	title := strings.TrimSpace(s.Title)
	if s.Parent == nil {
		return title
	}
	return joinTitles(s.Parent.FullTitle(), title)
}

func joinTitles(parent, title string) string {
	if parent == "" {
		return title
	}
	if title == "" {
		return parent
	}
	return parent + " " + title
}
