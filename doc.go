// Package ovl is a minimal retained-mode UI toolkit for rendering an
// on-screen overlay directly into a shared RGBA4444 framebuffer.
//
// # Overview
//
// ovl composes a tree of Elements, rasterizes text through a cached
// glyph atlas (see the text subpackage), and manages a navigable LIFO
// stack of Screens driven by a per-frame poll/update/draw loop.
//
// # Quick Start
//
//	nav := ovl.NewNavigator(provider, input, fonts,
//	    ovl.WithScreenFactory(func() ovl.Screen { return newMainScreen() }))
//
//	// One frame: poll input, update the active screen, draw it.
//	nav.Tick()
//
//	// Or drive frames until the session closes:
//	nav.Run(ctx)
//
// # Architecture
//
// The toolkit is organized into:
//   - Renderer: clipped pixel writes, 4-bit fixed-point alpha blending,
//     rectangles, and glyph-based text drawing
//   - Element tree: List, ListItem, and OverlayFrame variants with
//     layout, focus, and invalidation propagation
//   - Screen: one page of UI state owning one Element tree and one
//     focus reference
//   - Navigator: the LIFO screen stack and the frame loop
//
// Platform concerns (input polling, framebuffer acquisition, font data)
// enter through the InputSource, SurfaceProvider, and font-blob
// boundaries and stay outside this package.
package ovl
