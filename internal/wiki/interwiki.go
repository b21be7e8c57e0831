package wiki

import (
	"fmt"
	"strings"
)

// interwikiMap maps a lower case interwiki prefix to the base URL of that
// wiki. The page part of an interwiki link is appended to the base URL.
var interwikiMap = map[string]string{
	"devthread":                "http://dev.list.galaxyproject.org/",
	"devlistthread":            "http://dev.list.galaxyproject.org/",
	"userthread":               "http://user.list.galaxyproject.org/",
	"announcethread":           "http://announce.list.galaxyproject.org/",
	"francethread":             "http://france.list.galaxyproject.org/",
	"trello":                   "https://trello.com/b/75c1kASa/galaxy-development",
	"toolshedview":             "http://toolshed.g2.bx.psu.edu/view/",
	"src":                      "https://github.com/galaxyproject/galaxy/tree/master/",
	"srcdoccentral":            "https://galaxy-central.readthedocs.org/en/latest/",
	"srcdocdist":               "https://galaxy-dist.readthedocs.org/en/latest/",
	"gmod":                     "http://gmod.org/wiki/",
	"pmid":                     "http://www.ncbi.nlm.nih.gov/pubmed/",
	"main":                     "https://usegalaxy.org/",
	"data_libraries":           "https://usegalaxy.org/library/",
	"published_histories":      "https://usegalaxy.org/history/list_published",
	"published_workflows":      "https://usegalaxy.org/workflow/list_published",
	"published_visualizations": "https://usegalaxy.org/visualization/list_published",
	"published_pages":          "https://usegalaxy.org/page/list_published",
	"bbissue":                  "https://bitbucket.org/galaxy/galaxy-central/issue/",
	"screencast":               "http://screencast.g2.bx.psu.edu/",
	"moinmoin":                 "http://moinmo.in/",
	"wikipedia":                "https://en.wikipedia.org/wiki/",
}

// UnknownPrefixError is returned when an interwiki link uses a prefix that
// is not in the interwiki map.
type UnknownPrefixError struct {
	Prefix string
}

func (err *UnknownPrefixError) Error() string {
	return fmt.Sprintf("unknown interwiki prefix %q", err.Prefix)
}

// InterwikiURL resolves an interwiki prefix and page to a full URL. The
// prefix is matched case-insensitively.
func InterwikiURL(prefix, page string) (string, error) {
	base, found := interwikiMap[strings.ToLower(prefix)]
	if !found {
		return "", &UnknownPrefixError{Prefix: prefix}
	}
	return base + page, nil
}
