package dom

import (
	"strings"
	"testing"

	"github.com/npillmayer/animsync/dom/w3cdom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

const page = `<!DOCTYPE html>
<html style="--accent: #4cddca"><head><style>
.card { transform: rotate(3deg); width: 200px; height: 120px; color: gray }
#hero { transform: translateY(10px) !important }
</style></head>
<body>
<div id="hero" class="card big"><h1>Hello <b>World</b></h1></div>
<div class="card" style="transform: scale(2); left: 5px">Second</div>
<p>Text</p>
</body></html>`

func parsePage(t *testing.T) *Document {
	doc, err := ParseString(page)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestQuerySelectorAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "animsync.dom")
	defer teardown()
	//
	doc := parsePage(t)
	list, err := doc.QuerySelectorAll(".card")
	if err != nil {
		t.Fatal(err)
	}
	if list.Length() != 2 {
		t.Fatalf("expected 2 cards, have %d", list.Length())
	}
	if list.Item(0).ID() != "hero" || list.Item(2) != nil {
		t.Errorf("unexpected item access: %v, %v", list.Item(0), list.Item(2))
	}
	again, _ := doc.Query("#hero")
	if again[0] != list.Item(0).(*Element) {
		t.Error("expected element wrappers to be unique per node")
	}
	if _, err = doc.QuerySelectorAll("div["); err == nil {
		t.Error("expected invalid selector to fail")
	}
}

func TestComputedStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "animsync.dom")
	defer teardown()
	//
	doc := parsePage(t)
	cards, _ := doc.Query(".card")
	hero, second := cards[0], cards[1]
	if s := hero.ComputedStyle("transform"); s != "translateY(10px)" {
		t.Errorf("expected important rule for #hero, is %q", s)
	}
	if s := second.ComputedStyle("transform"); s != "scale(2)" {
		t.Errorf("expected inline style to win, is %q", s)
	}
	p, _ := doc.Query("p")
	if s := p[0].ComputedStyle("transform"); s != "none" {
		t.Errorf("expected default transform none, is %q", s)
	}
	h1 := hero.FirstElementChild().(*Element)
	if s := h1.ComputedStyle("color"); s != "gray" {
		t.Errorf("expected color to be inherited, is %q", s)
	}
	if s := h1.ComputedStyle("width"); s != "auto" {
		t.Errorf("expected width not to be inherited, is %q", s)
	}
	r := second.BoundingClientRect()
	if r != (w3cdom.Rect{X: 5, Width: 200, Height: 120}) {
		t.Errorf("unexpected bounding box %+v", r)
	}
}

func TestInlineStyle(t *testing.T) {
	doc := parsePage(t)
	p, _ := doc.Query("p")
	st := p[0].Style()
	st.SetProperty("transform", "translateX(4px)")
	st.SetProperty("opacity", "0.5")
	if s, _ := p[0].Attribute("style"); s != "transform: translateX(4px); opacity: 0.5;" {
		t.Errorf("unexpected style attribute %q", s)
	}
	if old := st.RemoveProperty("transform"); old != "translateX(4px)" {
		t.Errorf("expected old value translateX(4px), is %q", old)
	}
	st.RemoveProperty("opacity")
	if _, ok := p[0].Attribute("style"); ok {
		t.Error("expected empty style attribute to be removed")
	}
}

func TestVars(t *testing.T) {
	doc := parsePage(t)
	if v := doc.GetVar("--accent"); v != "#4cddca" {
		t.Errorf("expected --accent from root, is %q", v)
	}
	doc.SetVar("--speed", "2")
	if v := doc.GetVar("--speed"); v != "2" {
		t.Errorf("expected --speed to be 2, is %q", v)
	}
	b, _ := doc.Query("b")
	if v := b[0].ComputedStyle("--speed"); v != "2" {
		t.Errorf("expected custom property to cascade, is %q", v)
	}
}

func TestVarNamesAreCaseSensitive(t *testing.T) {
	doc := parsePage(t)
	doc.SetVar("--Accent", "red")
	if v := doc.GetVar("--accent"); v != "#4cddca" {
		t.Errorf("expected --accent to be unaffected by --Accent, is %q", v)
	}
	if v := doc.GetVar("--Accent"); v != "red" {
		t.Errorf("expected --Accent to be red, is %q", v)
	}
}

func TestAddStyleSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "animsync.dom")
	defer teardown()
	//
	doc := parsePage(t)
	if err := doc.AddStyleSheet(".card { width: 300px }"); err != nil {
		t.Fatal(err)
	}
	if err := doc.AddStyleSheet(".card { color: black } #hero { transform: none }"); err != nil {
		t.Fatal(err)
	}
	cards, _ := doc.Query(".card")
	if s := cards[1].ComputedStyle("width"); s != "300px" {
		t.Errorf("expected added rule to override <style> rule, width is %q", s)
	}
	if s := cards[1].ComputedStyle("color"); s != "black" {
		t.Errorf("expected rules of both added sheets, color is %q", s)
	}
	if s := cards[0].ComputedStyle("transform"); s != "translateY(10px)" {
		t.Errorf("expected important <style> rule to win, is %q", s)
	}
	if s := cards[1].ComputedStyle("height"); s != "120px" {
		t.Errorf("expected <style> rules to remain, height is %q", s)
	}
}

func TestClassList(t *testing.T) {
	doc := parsePage(t)
	hero, _ := doc.Query("#hero")
	cl := hero[0].ClassList()
	cl.Add("visible", "card")
	if v := strings.Join(cl.Values(), " "); v != "card big visible" {
		t.Errorf("unexpected classes %q", v)
	}
	cl.Remove("big")
	if cl.Toggle("card") || cl.Contains("card") {
		t.Error("expected toggle to remove card")
	}
	if !cl.Toggle("card") {
		t.Error("expected toggle to add card")
	}
	if v := strings.Join(cl.Values(), " "); v != "visible card" {
		t.Errorf("unexpected classes %q", v)
	}
}

func TestTextContent(t *testing.T) {
	doc := parsePage(t)
	hero, _ := doc.Query("#hero")
	if s := hero[0].TextContent(); s != "Hello World" {
		t.Errorf("expected 'Hello World', is %q", s)
	}
	hero[0].SetTextContent("Bye")
	if s := hero[0].TextContent(); s != "Bye" || hero[0].FirstElementChild() != nil {
		t.Errorf("expected children to be replaced, text is %q", s)
	}
	if !strings.Contains(doc.String(), `<div id="hero" class="card big">Bye</div>`) {
		t.Errorf("unexpected rendering %s", doc.String())
	}
}

func TestEvents(t *testing.T) {
	doc := parsePage(t)
	cards, _ := doc.Query(".card")
	var got []string
	cards[0].AddEventListener("click", func(ev w3cdom.Event) {
		got = append(got, ev.Type+"@"+ev.Target.ID())
	})
	if n := cards[0].DispatchEvent(w3cdom.Event{Type: "click"}); n != 1 {
		t.Errorf("expected 1 handler, have %d", n)
	}
	if n := cards[1].DispatchEvent(w3cdom.Event{Type: "click"}); n != 0 {
		t.Errorf("expected no handlers for second card, have %d", n)
	}
	again, _ := doc.Query("#hero")
	again[0].DispatchEvent(w3cdom.Event{Type: "click"})
	if len(got) != 2 || got[1] != "click@hero" {
		t.Errorf("unexpected events %v", got)
	}
}

func TestWalk(t *testing.T) {
	doc := parsePage(t)
	var texts []string
	Walk(doc.HTMLNode(), NodeIsText, func(n *html.Node) bool {
		texts = append(texts, strings.TrimSpace(n.Data))
		return len(texts) < 2
	})
	if len(texts) != 2 || !strings.HasPrefix(texts[0], ".card") || texts[1] != "Hello" {
		t.Errorf("expected walk to stop after style text and 'Hello', have %v", texts)
	}
	if n := len(doc.Elements()); n != 9 {
		t.Errorf("expected 9 elements, have %d", n)
	}
}
