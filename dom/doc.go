// Package dom recognises DOM element nodes and element collections built
// with golang.org/x/net/html.
//
//	doc, _ := dom.Parse(strings.NewReader(`<body><p>a</p><p>b</p></body>`))
//	body := dom.Find(doc, "body")
//	dom.IsElement(body)                             // → true
//	dom.IsElements(dom.ChildNodes(body))            // → true
//	dom.IsElement("div")                            // → false
//
// [NodeList] is a live, array-like view of a node's children, mirroring the
// childNodes collection of a browser DOM.
package dom
