package ports

// FontStore resolves fonts for slide text at fixed per-role point sizes.
// Resolution never fails: when a configured font asset is unavailable the
// store substitutes a bundled default at the same size, because failing to
// render text is worse than imperfect typography.
type FontStore interface {
	// Resolve returns the font for a slide role and text kind.
	Resolve(role SlideRole, kind TextKind) Font
}
