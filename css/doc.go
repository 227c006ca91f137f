// Package css implements Stormlicht's CSS style engine: parsing CSS
// declarations into a typed property model, collecting declarations from a
// rule's block, and resolving specified values against a style context
// into a computed style with inheritance and shorthand expansion.
//
// Selector matching, cascade ordering, animations, custom properties,
// @-rules, and CSSOM mutation are handled upstream and downstream of this
// package, not within it.
package css
