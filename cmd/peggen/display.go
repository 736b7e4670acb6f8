package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/aledsdavies/peggen/tree"
)

const colorBlue = "\033[34m"

// printTree renders a parse tree with box-drawing tree characters,
// grounded on cli/display.go's DisplayPlan/renderStep tree rendering.
func printTree(w io.Writer, n tree.Node, source string) {
	renderNode(w, n, source, "", true)
}

func renderNode(w io.Writer, n tree.Node, source, prefix string, isLast bool) {
	branch := "├─ "
	if isLast {
		branch = "└─ "
	}

	label := colorize(n.Rule, colorBlue)
	switch n.Kind {
	case tree.Terminal:
		fmt.Fprintf(w, "%s%s%s %s\n", prefix, branch, label, quoteText(n.Text(source)))
	case tree.Optional:
		if n.Inner == nil {
			fmt.Fprintf(w, "%s%s%s (absent)\n", prefix, branch, label)
			return
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, branch, label)
		renderNode(w, *n.Inner, source, childPrefix(prefix, isLast), true)
	case tree.Wrapped:
		fmt.Fprintf(w, "%s%s%s\n", prefix, branch, label)
		renderNode(w, *n.Inner, source, childPrefix(prefix, isLast), true)
	case tree.Sequence:
		fmt.Fprintf(w, "%s%s%s\n", prefix, branch, label)
		for i, child := range n.Children {
			renderNode(w, child, source, childPrefix(prefix, isLast), i == len(n.Children)-1)
		}
	}
}

func childPrefix(prefix string, isLast bool) string {
	if isLast {
		return prefix + "   "
	}
	return prefix + "│  "
}

func quoteText(s string) string {
	return "\"" + strings.ReplaceAll(s, "\n", "\\n") + "\""
}
