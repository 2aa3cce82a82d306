package router

import (
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/gin-contrib/multitemplate"

	"paperhub/internal/utils"
	"paperhub/internal/vote"
)

// FuncMap is shared by every page and fragment.
var FuncMap = template.FuncMap{
	"dict": func(values ...interface{}) (map[string]interface{}, error) {
		if len(values)%2 != 0 {
			return nil, fmt.Errorf("invalid dict call")
		}
		dict := make(map[string]interface{}, len(values)/2)
		for i := 0; i < len(values); i += 2 {
			key, ok := values[i].(string)
			if !ok {
				return nil, fmt.Errorf("dict keys must be strings")
			}
			dict[key] = values[i+1]
		}
		return dict, nil
	},
	"add": func(a, b int) int {
		return a + b
	},
	"timeSince": func(t time.Time) string {
		return utils.TimeSince(t, time.Now())
	},
	"formatDate": utils.FormatDateStandard,
	"markdown":   utils.RenderMarkdown,
	"voteClass": func(t vote.Type) string {
		switch t {
		case vote.Upvote:
			return "upvoted"
		case vote.Downvote:
			return "downvoted"
		}
		return ""
	},
}

// LoadTemplates builds the renderer. Pages get the layout and every
// component; fragments get the components only.
func LoadTemplates(templatesDir string) (multitemplate.Renderer, error) {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		return nil, err
	}
	components, err := filepath.Glob(templatesDir + "/components/*.html")
	if err != nil {
		return nil, err
	}
	if len(layouts) == 0 || len(components) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}

	page := func(view string) []string {
		files := make([]string, 0, len(layouts)+len(components)+1)
		files = append(files, layouts...)
		files = append(files, components...)
		return append(files, templatesDir+"/views/"+view)
	}
	fragment := func(name string) []string {
		files := []string{templatesDir + "/fragments/" + name}
		return append(files, components...)
	}

	for _, view := range []string{"document/show.html", "thread/show.html", "error.html"} {
		r.AddFromFilesFuncs(view, FuncMap, page(view)...)
	}
	for _, name := range []string{"vote.html", "comment_item.html", "comment_text.html"} {
		r.AddFromFilesFuncs("fragments/"+name, FuncMap, fragment(name)...)
	}
	return r, nil
}
