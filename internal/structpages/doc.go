// Package structpages maps a tree of page structs onto HTTP routes using struct
// tags, and renders the templ components those pages expose.
//
// A field tagged `route:"[METHOD] /path [Title]"` becomes a child page. A page
// is rendered through its component methods (any method returning a
// [templ.Component]); which one is chosen per request is decided by a
// PageConfig method or the default page config, [HTMXPageConfig] unless
// overridden. A Props method supplies the component arguments. Pages that
// implement http.Handler (or ServeHTTP returning an error) are mounted as-is.
//
// Methods may declare extra parameters; they are filled from the values passed
// to [StructPages.MountPages] by type.
package structpages
