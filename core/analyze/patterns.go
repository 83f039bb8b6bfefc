// Package analyze — candidate pattern tables.
// Each Pattern is one heuristic rule for locating TOC items or content
// sections in arbitrary markup. Lists are ordered by decreasing
// specificity; evaluation never short-circuits, the best-scoring
// candidate set survives.
package analyze

// Pattern is a named CSS selector describing one plausible shape of
// navigation items or section containers.
type Pattern struct {
	Name     string
	Selector string
}

// tocPatterns locate table-of-contents items.
var tocPatterns = []Pattern{
	{"nav-menu-items", `.nav-menu li, .navigation-menu li, .nav-list li`},
	{"sidebar-menu-items", `.sidebar-menu li, .sidebar-nav li, .sidebar nav li`},
	{"nav-container-items", `nav li, .nav li, .menu li, aside li`},
	{"nav-anchor-links", `nav a[href^="#"], .toc a[href^="#"]`},
	{"nav-attr-substring", `[class*="nav"] li, [id*="nav"] li`},
}

// sectionPatterns locate content sections ("slides").
var sectionPatterns = []Pattern{
	{"slide-containers", `.slide, [data-slide]`},
	{"content-sections", `.content-section, .slide-section, .page-section`},
	{"id-prefix", `[id^="slide-"], [id^="section-"]`},
	{"generic-sections", `section, article`},
	{"attr-substring", `[class*="screen"], [class*="panel"]`},
	{"main-children", `main > div, main > section`},
}
