package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/net/html"

	"github.com/hasbyte1/go-blocks-utils/arr"
	"github.com/hasbyte1/go-blocks-utils/dom"
	"github.com/hasbyte1/go-blocks-utils/kind"
	"github.com/hasbyte1/go-blocks-utils/obj"
	"github.com/hasbyte1/go-blocks-utils/value"
)

func (a *app) kindCommand() *cli.Command {
	return &cli.Command{
		Name:      "kind",
		Usage:     "print the kind of each document and of its top-level entries",
		ArgsUsage: "[FILE...]",
		Action: func(_ context.Context, cmd *cli.Command) error {
			names := cmd.Args().Slice()
			if len(names) == 0 {
				names = []string{"-"}
			}
			n := 0
			for _, name := range names {
				data, err := a.readInput(name)
				if err != nil {
					return err
				}
				docs, err := decodeDocuments(data, a.settings.NullAsUndefined)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				for _, doc := range docs {
					if n > 0 {
						fmt.Fprintln(a.stdout, "---")
					}
					a.printKinds(doc)
					n++
				}
			}
			return nil
		},
	}
}

// printKinds prints the kind of doc followed by one indented line per
// element or own property.
func (a *app) printKinds(doc any) {
	fmt.Fprintln(a.stdout, describe(doc))
	switch kind.Of(doc) {
	case kind.Array:
		arr.Each(doc, func(item any, i int) bool {
			fmt.Fprintf(a.stdout, "  [%d]: %s\n", i, describe(item))
			return true
		})
	case kind.Object:
		value.EachOwn(doc, func(key string, val any) bool {
			fmt.Fprintf(a.stdout, "  %s: %s\n", key, describe(val))
			return true
		})
	}
}

// describe names the kind of v, flagging NaN and infinite numbers and
// strings that hold a finite number.
func describe(v any) string {
	k := kind.Of(v)
	switch {
	case k == kind.Number && kind.IsNaN(v):
		return k.String() + " (NaN)"
	case k == kind.Number && !kind.IsFinite(v):
		return k.String() + " (infinite)"
	case k == kind.String && kind.IsFinite(v):
		return k.String() + " (numeric)"
	}
	return k.String()
}

func (a *app) mergeCommand() *cli.Command {
	return &cli.Command{
		Name:      "merge",
		Usage:     "shallow-merge object documents, later files winning",
		ArgsUsage: "FILE...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			names := cmd.Args().Slice()
			if len(names) == 0 {
				return &usageError{msg: "merge: at least one FILE is required"}
			}
			out := value.NewObject(nil)
			for _, name := range names {
				data, err := a.readInput(name)
				if err != nil {
					return err
				}
				m, err := decodeObject(name, data, a.settings.NullAsUndefined)
				if err != nil {
					return err
				}
				if m == nil {
					a.logger.Warn("skipping empty document", slog.String("file", name))
					continue
				}
				a.logger.Debug("merging", slog.String("file", name), slog.Int("keys", len(m)))
				obj.Extend(out, m)
			}
			return a.write(out)
		},
	}
}

// firstDocument decodes the named input and returns its first document,
// or undefined when the input is empty.
func (a *app) firstDocument(name string) (any, error) {
	data, err := a.readInput(name)
	if err != nil {
		return nil, err
	}
	docs, err := decodeDocuments(data, a.settings.NullAsUndefined)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(docs) == 0 {
		return value.Undefined, nil
	}
	if len(docs) > 1 {
		a.logger.Warn("ignoring extra documents", slog.String("file", name), slog.Int("count", len(docs)-1))
	}
	return docs[0], nil
}

func (a *app) hasCommand() *cli.Command {
	return &cli.Command{
		Name:      "has",
		Usage:     "report whether the document owns KEY",
		ArgsUsage: "FILE KEY",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 2 {
				return &usageError{msg: "has: expected FILE and KEY"}
			}
			doc, err := a.firstDocument(args[0])
			if err != nil {
				return err
			}
			ok := obj.Has(doc, args[1])
			fmt.Fprintln(a.stdout, ok)
			if !ok {
				return &exitError{code: 1}
			}
			return nil
		},
	}
}

func (a *app) getCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "print the value found at a dot path",
		ArgsUsage: "FILE PATH",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 2 {
				return &usageError{msg: "get: expected FILE and PATH"}
			}
			doc, err := a.firstDocument(args[0])
			if err != nil {
				return err
			}
			v, ok := obj.Get(doc, args[1])
			if !ok {
				fmt.Fprintf(a.stderr, "%s: not found\n", args[1])
				return &exitError{code: 1}
			}
			return a.write(v)
		},
	}
}

func (a *app) domCommand() *cli.Command {
	return &cli.Command{
		Name:      "dom",
		Usage:     "classify the children of an HTML document's <body>",
		ArgsUsage: "FILE",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "dom: expected FILE"}
			}
			name := cmd.Args().First()
			data, err := a.readInput(name)
			if err != nil {
				return err
			}
			root, err := dom.Parse(bytes.NewReader(data))
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrParseFailed, name, err)
			}
			children := dom.ChildNodes(dom.Find(root, "body"))
			nodes := arr.ToArray(children)
			for i, n := range nodes {
				fmt.Fprintf(a.stdout, "[%d] %s %s\n", i, kind.Of(n), label(n))
			}
			fmt.Fprintf(a.stdout, "elements: %t\n", kind.IsElements(nodes))
			fmt.Fprintf(a.stdout, "element children: %d\n", len(children.Elements()))
			return nil
		},
	}
}

// label renders a short description of a parsed node.
func label(v any) string {
	n, ok := v.(*html.Node)
	if !ok || n == nil {
		return ""
	}
	switch n.Type {
	case html.ElementNode:
		return "<" + n.Data + ">"
	case html.TextNode:
		return strconv.Quote(strings.TrimSpace(n.Data))
	case html.CommentNode:
		return "<!--" + n.Data + "-->"
	}
	return ""
}
