// cmd/petrotech/search.go
package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/petrotech/petrotech/internal/filter"
	"github.com/petrotech/petrotech/internal/output"
	"github.com/petrotech/petrotech/internal/viewstate"
)

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var (
		queryFlag    string
		categoryFlag string
		tagFlags     []string
		sortFlag     string
		outputFlag   string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Filter the catalog and print the matching tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := output.New(outputFlag)
			if err != nil {
				return err
			}

			c, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			st := initialState(opts.cfg).SetSearchText(queryFlag)
			if sortFlag != "" {
				order, err := filter.ParseSortOrder(sortFlag)
				if err != nil {
					return err
				}
				st = st.SetSortOrder(order)
			}
			if categoryFlag != "" {
				if _, ok := c.Category(categoryFlag); !ok {
					return fmt.Errorf("unknown category %q", categoryFlag)
				}
				st = st.ToggleCategory(categoryFlag)
			}
			for _, tag := range tagFlags {
				st = st.AddTag(tag)
			}

			return write(cmd.OutOrStdout(), func() ([]byte, error) {
				return f.Format(output.NewSearchResult(c, st))
			})
		},
	}

	cmd.Flags().StringVarP(&queryFlag, "query", "q", "", "text matched against tool names and descriptions")
	cmd.Flags().StringVar(&categoryFlag, "category", "", "category id")
	cmd.Flags().StringArrayVar(&tagFlags, "tag", nil, "required tag (repeatable, all must match)")
	cmd.Flags().StringVar(&sortFlag, "sort", "", "sort order: newest, oldest (default from config)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "markdown", "output format: json, markdown")
	return cmd
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print the details of one tool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.New(outputFlag)
			if err != nil {
				return err
			}

			c, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			tool, ok := viewstate.OpenedTool(c, viewstate.New().OpenTool(args[0]))
			if !ok {
				return fmt.Errorf("unknown tool %q", args[0])
			}
			return write(cmd.OutOrStdout(), func() ([]byte, error) {
				return f.FormatTool(output.NewToolDetail(c, tool))
			})
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "markdown", "output format: json, markdown")
	return cmd
}

func newCategoriesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories with their tool counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			counts := make(map[string]int)
			for _, tool := range c.Tools() {
				counts[tool.Category]++
			}
			out := cmd.OutOrStdout()
			for _, cat := range c.Categories() {
				fmt.Fprintf(out, "%-16s %-36s %d\n", cat.ID, cat.Name, counts[cat.ID])
			}
			return nil
		},
	}
}

func newTagsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List every tag in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, tag := range c.Tags() {
				fmt.Fprintln(out, tag)
			}
			return nil
		},
	}
}

func write(w io.Writer, render func() ([]byte, error)) error {
	data, err := render()
	if err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	_, err = w.Write(data)
	return err
}
