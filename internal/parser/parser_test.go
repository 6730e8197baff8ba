package parser

import (
	"testing"

	tmpl "github.com/tmpllang/compiler/internal"
	"github.com/tmpllang/compiler/internal/serializer"
	"github.com/tmpllang/compiler/internal/test_utils"
)

func mustParse(t *testing.T, source string) *tmpl.Root {
	t.Helper()
	root, errs := Parse(source, Options{})
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors for %q: %v", source, errs)
	}
	return root
}

func TestParseRegularElement(t *testing.T) {
	root := mustParse(t, `<div class="a">hi</div>`)
	el := root.Fragment.FirstChild
	if el == nil || el.Type != tmpl.ElementNode || el.Data != "div" {
		t.Fatalf("expected a div element, got %#v", el)
	}
	if el.ElementKind != tmpl.RegularElementKind {
		t.Fatalf("expected RegularElementKind, got %v", el.ElementKind)
	}
	if len(el.Attr) != 1 || el.Attr[0].Key != "class" {
		t.Fatalf("expected one 'class' attribute, got %#v", el.Attr)
	}
	text := el.FirstChild
	if text == nil || text.Type != tmpl.TextNode || text.Data != "hi" {
		t.Fatalf("expected text child 'hi', got %#v", text)
	}
}

func TestParseVoidElementNeverOpensAFrame(t *testing.T) {
	root := mustParse(t, `<br><p>after</p>`)
	br := root.Fragment.FirstChild
	if br == nil || br.Data != "br" || !br.Void {
		t.Fatalf("expected a void br element, got %#v", br)
	}
	p := br.NextSibling
	if p == nil || p.Data != "p" {
		t.Fatalf("expected a sibling <p>, got %#v", p)
	}
}

func TestParseComponentKind(t *testing.T) {
	root := mustParse(t, `<Widget foo={1} />`)
	el := root.Fragment.FirstChild
	if el.ElementKind != tmpl.ComponentKind {
		t.Fatalf("expected ComponentKind for capitalized tag, got %v", el.ElementKind)
	}
	if !el.SelfClosing {
		t.Fatalf("expected self-closing component")
	}
}

func TestParseImplicitPClose(t *testing.T) {
	root := mustParse(t, `<p>one<div>two</div>`)
	p := root.Fragment.FirstChild
	if p == nil || p.Data != "p" {
		t.Fatalf("expected leading <p>, got %#v", p)
	}
	if p.AutoClosed == nil || p.AutoClosed.Tag != "p" {
		t.Fatalf("expected <p> to be marked implicitly closed, got %#v", p.AutoClosed)
	}
	div := p.NextSibling
	if div == nil || div.Data != "div" {
		t.Fatalf("expected <div> as next sibling after implicit close, got %#v", div)
	}
}

func TestParseIfElseIfElse(t *testing.T) {
	root := mustParse(t, `{#if a}A{:else if b}B{:else}C{/if}`)
	ifNode := root.Fragment.FirstChild
	if ifNode.Type != tmpl.IfBlockNode {
		t.Fatalf("expected IfBlockNode, got %v", ifNode.Type)
	}
	if ifNode.IfConsequent == nil || ifNode.IfConsequent.FirstChild.Data != "A" {
		t.Fatalf("expected consequent 'A', got %#v", ifNode.IfConsequent)
	}
	elseIf := ifNode.IfAlternate
	if elseIf == nil || elseIf.Type != tmpl.IfBlockNode || !elseIf.IsElseIf {
		t.Fatalf("expected an else-if chain link, got %#v", elseIf)
	}
	if elseIf.IfConsequent.FirstChild.Data != "B" {
		t.Fatalf("expected else-if consequent 'B', got %#v", elseIf.IfConsequent)
	}
	finalElse := elseIf.IfAlternate
	if finalElse == nil || finalElse.FirstChild.Data != "C" {
		t.Fatalf("expected final else 'C', got %#v", finalElse)
	}
}

func TestParseEachBlockKeyed(t *testing.T) {
	root := mustParse(t, `{#each items as item, i (item.id)}{item}{:else}none{/each}`)
	each := root.Fragment.FirstChild
	if each.Type != tmpl.EachBlockNode {
		t.Fatalf("expected EachBlockNode, got %v", each.Type)
	}
	if each.EachIndex != "i" {
		t.Fatalf("expected index name 'i', got %q", each.EachIndex)
	}
	if !each.EachKeyed || each.EachKey == nil {
		t.Fatalf("expected a keyed each-block")
	}
	if each.FirstChild == nil || each.FirstChild.Type != tmpl.ExpressionNode {
		t.Fatalf("expected the each-block's body as its own children, got %#v", each.FirstChild)
	}
	if each.Fallback == nil || each.Fallback.FirstChild.Data != "none" {
		t.Fatalf("expected fallback fragment 'none', got %#v", each.Fallback)
	}
}

func TestParseAwaitThenCatch(t *testing.T) {
	root := mustParse(t, `{#await p}loading{:then v}{v}{:catch e}{e}{/await}`)
	await := root.Fragment.FirstChild
	if await.Type != tmpl.AwaitBlockNode {
		t.Fatalf("expected AwaitBlockNode, got %v", await.Type)
	}
	if await.AwaitPending == nil || await.AwaitPending.FirstChild.Data != "loading" {
		t.Fatalf("expected pending fragment 'loading', got %#v", await.AwaitPending)
	}
	if await.AwaitThen == nil || await.AwaitValue == nil {
		t.Fatalf("expected a then fragment and bound value")
	}
	if await.AwaitCatch == nil || await.AwaitError == nil {
		t.Fatalf("expected a catch fragment and bound error")
	}
	if await.Phase != tmpl.AwaitCatch {
		t.Fatalf("expected final phase AwaitCatch, got %v", await.Phase)
	}
}

func TestParseSnippetBlock(t *testing.T) {
	root := mustParse(t, `{#snippet row(item)}<li>{item}</li>{/snippet}`)
	snippet := root.Fragment.FirstChild
	if snippet.Type != tmpl.SnippetBlockNode || snippet.SnippetName != "row" {
		t.Fatalf("expected a snippet block named 'row', got %#v", snippet)
	}
	if snippet.SnippetParams == nil {
		t.Fatalf("expected snippet params to be parsed")
	}
	if snippet.FirstChild == nil || snippet.FirstChild.Data != "li" {
		t.Fatalf("expected the snippet body as its own children, got %#v", snippet.FirstChild)
	}
}

func TestParseSpecialTags(t *testing.T) {
	root := mustParse(t, `{@html raw}{@const x = 1}{@render row(item)}`)
	html := root.Fragment.FirstChild
	if html.Type != tmpl.HtmlTagNode {
		t.Fatalf("expected HtmlTagNode, got %v", html.Type)
	}
	constTag := html.NextSibling
	if constTag.Type != tmpl.ConstTagNode {
		t.Fatalf("expected ConstTagNode, got %v", constTag.Type)
	}
	render := constTag.NextSibling
	if render.Type != tmpl.RenderTagNode {
		t.Fatalf("expected RenderTagNode, got %v", render.Type)
	}
}

func TestParseFrontmatterScriptAndStyle(t *testing.T) {
	root := mustParse(t, "<script>let x = 1;</script>\n<style>.a { color: red; }</style>\n<div class=\"a\" />")
	if root.Instance == nil {
		t.Fatalf("expected an instance script")
	}
	if root.Style == nil || root.Stylesheet == nil {
		t.Fatalf("expected a parsed stylesheet")
	}
}

func TestParseModuleScript(t *testing.T) {
	root := mustParse(t, `<script module>export const x = 1;</script><div></div>`)
	if root.Module == nil {
		t.Fatalf("expected a module script")
	}
	if root.Instance != nil {
		t.Fatalf("did not expect an instance script")
	}
}

func TestParseLooseModeRecoversUnclosedTag(t *testing.T) {
	root, errs := Parse(`<div><span>text`, Options{Loose: true})
	if root == nil {
		t.Fatalf("expected a tree even in loose mode")
	}
	_ = errs // loose mode downgrades to warnings internally; errors may still report other issues
	div := root.Fragment.FirstChild
	if div == nil || div.Data != "div" {
		t.Fatalf("expected a recovered <div>, got %#v", div)
	}
}

func TestParseDuplicateAttributeIsAnError(t *testing.T) {
	_, errs := Parse(`<div class="a" class="b" />`, Options{})
	if len(errs) == 0 {
		t.Fatalf("expected a duplicate-attribute error")
	}
}

// TestSerializeSnapshot exercises the snapshot-testing helpers the way
// the teacher's printer tests do, pairing an input component with its
// serialized AST.
func TestSerializeSnapshot(t *testing.T) {
	source := test_utils.Dedent(`
		<script>
			let count = 0;
		</script>
		<button onclick={() => count++}>{count}</button>
	`)
	root, errs := Parse(source, Options{})
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	out, err := serializer.Serialize(root, serializer.Options{})
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	test_utils.MakeSnapshot(&test_utils.SnapshotOptions{
		Testing:      t,
		TestCaseName: t.Name(),
		Input:        source,
		Output:       string(out),
		Kind:         test_utils.JsonOutput,
	})
}
