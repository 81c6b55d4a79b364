// The font subpackage contains helper methods to parse fonts and
// obtain information from them (name, family, missing runes...),
// the closed [Family] enumeration used to select captcha fonts, and
// a [Library] type that binds each family to a concrete parsed font.
//
// Most programs only need [DefaultLibrary](), which binds every family
// to one of the bold Go fonts. Custom fonts can be parsed into a
// [Library] and bound to families with [Library.Bind]().
package font
