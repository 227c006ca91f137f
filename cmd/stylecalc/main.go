// Command stylecalc reads a CSS declaration block from stdin and prints the
// resulting computed style as a tree, for manual inspection of the style
// engine during development. It is not part of the engine's public API.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tp "github.com/xlab/treeprint"

	"github.com/stormlicht/style/css"
)

func main() {
	viewportWidth := flag.Float64("viewport-width", 1280, "viewport width in pixels")
	viewportHeight := flag.Float64("viewport-height", 720, "viewport height in pixels")
	rootFontSize := flag.Float64("root-font-size", 16, "root element font size in pixels")
	flag.Parse()

	source, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "stylecalc: reading stdin:", err)
		os.Exit(1)
	}

	rule, collectErr := css.CollectDeclarations(string(source), nil)
	if collectErr != nil {
		fmt.Fprintln(os.Stderr, "stylecalc: some declarations were dropped:", collectErr)
	}

	style := css.Default()
	ctx := css.DefaultStyleContext()
	ctx.Viewport = css.Viewport{WidthPX: *viewportWidth, HeightPX: *viewportHeight}
	ctx.RootFontSizePX = *rootFontSize
	ctx.ParentFontSizePX = *rootFontSize
	ctx.ParentStyle = &style

	if applyErr := css.ApplyDeclarations(&style, rule, ctx); applyErr != nil {
		fmt.Fprintln(os.Stderr, "stylecalc: some declarations failed to apply:", applyErr)
	}

	fmt.Println(renderComputedStyle(style))
}

func renderComputedStyle(style css.ComputedStyle) string {
	tree := tp.New()
	tree.SetValue("computed style")

	inherited := tree.AddBranch("inherited")
	inherited.AddNode(fmt.Sprintf("color: %s", style.Color()))
	inherited.AddNode(fmt.Sprintf("cursor: %v", style.Cursor()))
	inherited.AddNode(fmt.Sprintf("font-family: %v", style.FontFamilyValue()))
	inherited.AddNode(fmt.Sprintf("font-size: %.2fpx", style.FontSize().Value))
	inherited.AddNode(fmt.Sprintf("font-style: %v", style.FontStyleValue()))
	inherited.AddNode(fmt.Sprintf("list-style-type: %v", style.ListStyleTypeValue()))

	box := tree.AddBranch("box")
	box.AddNode(fmt.Sprintf("display: %v", style.DisplayValue()))
	box.AddNode(fmt.Sprintf("position: %v", style.PositionValue()))
	box.AddNode(fmt.Sprintf("width: %s", autoOrString(style.Width())))
	box.AddNode(fmt.Sprintf("height: %s", autoOrString(style.Height())))

	margin := box.AddBranch("margin")
	margin.AddNode(fmt.Sprintf("top: %s", autoOrString(style.MarginTop())))
	margin.AddNode(fmt.Sprintf("right: %s", autoOrString(style.MarginRight())))
	margin.AddNode(fmt.Sprintf("bottom: %s", autoOrString(style.MarginBottom())))
	margin.AddNode(fmt.Sprintf("left: %s", autoOrString(style.MarginLeft())))

	border := box.AddBranch("border")
	border.AddNode(fmt.Sprintf("top: %s %v %.2fpx", style.BorderTopColor(), style.BorderTopStyle(), style.BorderTopWidth().Value))
	border.AddNode(fmt.Sprintf("right: %s %v %.2fpx", style.BorderRightColor(), style.BorderRightStyle(), style.BorderRightWidth().Value))
	border.AddNode(fmt.Sprintf("bottom: %s %v %.2fpx", style.BorderBottomColor(), style.BorderBottomStyle(), style.BorderBottomWidth().Value))
	border.AddNode(fmt.Sprintf("left: %s %v %.2fpx", style.BorderLeftColor(), style.BorderLeftStyle(), style.BorderLeftWidth().Value))

	return tree.String()
}

func autoOrString(v css.AutoOr[css.PercentageOr[css.Length]]) string {
	if v.Auto {
		return "auto"
	}
	if v.Value.IsPercentage {
		return fmt.Sprintf("%.2f%%", float64(v.Value.Percentage))
	}
	return fmt.Sprintf("%.2fpx", v.Value.Value.Value)
}
