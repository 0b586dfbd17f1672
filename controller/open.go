package controller

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/genieiq/cli/constants"
	"github.com/genieiq/cli/errors"
)

// OpenApp opens the app's URL in the browser.
func (c *Controller) OpenApp(ctx context.Context, name string) error {
	app, err := c.gtwy.GetApp(ctx, name)
	if err != nil {
		return err
	}
	if app.Url == "" {
		return errors.NoActiveDeployment(name)
	}
	return c.gtwy.OpenInBrowser(app.Url)
}

// OpenDocs opens a docs shortcut, listing the known ones for an unknown key.
func (c *Controller) OpenDocs(shortcut string) error {
	if url, ok := constants.DocsURLMap[shortcut]; ok {
		return c.gtwy.OpenInBrowser(url)
	}

	keys := make([]string, 0, len(constants.DocsURLMap))
	longest := 0
	for k := range constants.DocsURLMap {
		if len(k) > longest {
			longest = len(k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("%s    url\n", padName("shortcut", longest))
	for _, k := range keys {
		fmt.Printf("%s => %s\n", padName(k, longest), constants.DocsURLMap[k])
	}
	return nil
}

func padName(name string, length int) string {
	if len(name) >= length {
		return name
	}
	return name + strings.Repeat(" ", length-len(name))
}
