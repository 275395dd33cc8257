package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/animsync/dom"
	"github.com/npillmayer/animsync/dom/domdbg"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump --html page.html [selector]",
	Short: "Print the element tree of an HTML document",
	Long: `Prints the element tree of a document, or of all elements matching a
selector, with inline styles and, optionally, computed properties.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		htmlPath, _ := cmd.Flags().GetString("html")
		computed, _ := cmd.Flags().GetStringSlice("computed")
		selector := ""
		if len(args) > 0 {
			selector = args[0]
		}
		return runDump(htmlPath, selector, computed)
	},
}

func init() {
	dumpCmd.Flags().String("html", "", "HTML document")
	dumpCmd.Flags().StringSlice("computed", nil, "computed properties to print, e.g. transform,width")
	_ = dumpCmd.MarkFlagRequired("html")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(htmlPath, selector string, computed []string) error {
	doc, err := loadDocument(htmlPath)
	if err != nil {
		return err
	}
	var elems []*dom.Element
	if selector == "" {
		elems = []*dom.Element{doc.Root()}
	} else if elems, err = doc.Query(selector); err != nil {
		return err
	}
	if len(elems) == 0 {
		return fmt.Errorf("no element matches %q", selector)
	}
	for i := range computed {
		computed[i] = strings.TrimSpace(computed[i])
	}
	for _, e := range elems {
		if err := domdbg.Dump(e, os.Stdout, computed...); err != nil {
			return err
		}
	}
	return nil
}
