// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ClassNotFoundId Id = iota + 1
	ClasspathRootInvalidId
	ManifestParseErrorId
	InvalidSelectorId
	RunnerConstructionFailedId
	ConfigLoadFailedId
	InvalidFilterPatternId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
	extLinks []HttpLink // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Title returns the first markdown heading without its marker.
func (i *Issue) Title() string {
	for _, line := range strings.Split(string(i.mdMsg), "\n") {
		if title, ok := strings.CutPrefix(strings.TrimSpace(line), "# "); ok {
			return title
		}
	}
	return ""
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue markdown; stylePath is a glamour style name or
// JSON style file.
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n## See also\n"
		for _, link := range i.docLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
		for _, link := range i.extLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	classNotFoundIssue = &Issue{
		id: ClassNotFoundId,
		mdMsg: `
# Class not found!

A class selector named a class that no manifest on the classpath declares.

## Things you can try:
- Check the fully qualified name, including the package:
~~~
$ vintage discover --class org.example.MyTest
~~~
- Add the directory holding the class manifest to the classpath in your config:
~~~cue
classpath: ["build/classes"]
~~~
- Or select the directory directly:
~~~
$ vintage discover --root build/classes
~~~`,
	}

	classpathRootInvalidIssue = &Issue{
		id: ClasspathRootInvalidId,
		mdMsg: `
# Classpath root cannot be read!

A classpath entry or a ` + "`--root`" + ` argument does not exist, is not a directory,
or cannot be listed.

## Things you can try:
- Verify the path exists and is a directory
- Check directory permissions
- Run ` + "`vintage config show`" + ` to see the effective classpath`,
	}

	manifestParseErrorIssue = &Issue{
		id: ManifestParseErrorId,
		mdMsg: `
# Failed to parse a class manifest!

Class manifests are CUE files ending in ` + "`.cue`" + `. A manifest that does not
match the schema is skipped and reported as a warning; the classes it
declares are not discovered.

## Example manifest:
~~~cue
pkg: "org.example"
classes: [{
	name: "CalculatorTest"
	categories: ["org.example.Fast"]
	methods: [{name: "adds"}, {name: "divides", ignored: true}]
}]
~~~`,
	}

	invalidSelectorIssue = &Issue{
		id: InvalidSelectorId,
		mdMsg: `
# Invalid selector!

Class names must be dotted names without empty segments, and root
selectors need at least one non-empty path.

## Things you can try:
- ` + "`--class org.example.MyTest`" + `
- ` + "`--package org.example`" + `
- ` + "`--root build/classes`",
	}

	runnerConstructionFailedIssue = &Issue{
		id: RunnerConstructionFailedId,
		mdMsg: `
# A class was skipped!

The legacy framework could not build a runner for a candidate class. The
rest of the tree was still discovered.

## Common causes:
- A suite lists a member class that is not on the classpath
- A suite contains itself, directly or through another suite
- A parameterized class declares no parameter sets
- The class names a runner the framework does not know`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

## Things you can try:
- Check the CUE syntax of your config file
- Compare it with the defaults:
~~~
$ vintage config show
~~~
- Unset ` + "`VINTAGE_*`" + ` environment variables that override it`,
	}

	invalidFilterPatternIssue = &Issue{
		id: InvalidFilterPatternId,
		mdMsg: `
# Invalid filter pattern!

` + "`--filter`" + ` takes a regular expression matched against the whole fully
qualified class name.

## Examples:
- ` + "`--filter '.*IntegrationTest'`" + `
- ` + "`--filter 'org\\.example\\..*'`",
	}

	catalog = []*Issue{
		classNotFoundIssue,
		classpathRootInvalidIssue,
		manifestParseErrorIssue,
		invalidSelectorIssue,
		runnerConstructionFailedIssue,
		configLoadFailedIssue,
		invalidFilterPatternIssue,
	}

	issues = func() map[Id]*Issue {
		m := make(map[Id]*Issue, len(catalog))
		for _, i := range catalog {
			m[i.Id()] = i
		}
		return m
	}()
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	return slices.Clone(catalog)
}

func Get(id Id) *Issue {
	return issues[id]
}
