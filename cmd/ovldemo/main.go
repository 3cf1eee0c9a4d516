// Command ovldemo renders a sample overlay session into a PNG.
//
// It builds a settings-style page (frame, list, clickable rows), drives
// the navigator through a scripted input sequence, and saves the final
// framebuffer for inspection.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/ovlkit/ovl"
	"github.com/ovlkit/ovl/text"
)

func main() {
	var (
		width    = flag.Int("width", ovl.LayerMaxWidth, "framebuffer width")
		height   = flag.Int("height", ovl.LayerMaxHeight, "framebuffer height")
		output   = flag.String("output", "overlay.png", "output file")
		fontPath = flag.String("font", "", "TTF font file (embedded fallback when empty)")
		backend  = flag.String("parser", "", "font parser backend (default backend when empty)")
	)
	flag.Parse()

	ovl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	fonts := text.NewFontManager()
	if err := fonts.Initialize(loadFont(*fontPath), sourceOptions(*backend)...); err != nil {
		log.Fatalf("Font initialization failed: %v", err)
	}

	surface := ovl.NewSurface(*width, *height)
	provider := &singleSurface{surface: surface}
	input := &script{frames: demoScript()}

	nav := ovl.NewNavigator(provider, input, fonts,
		ovl.WithConfig(ovl.Config{FramebufferWidth: *width, FramebufferHeight: *height}),
		ovl.WithScreenFactory(func() ovl.Screen { return newMainScreen() }),
	)

	for i := 0; i < len(input.frames)+1 && !nav.Closed(); i++ {
		nav.Tick()
	}

	if err := surface.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	hits, misses, rasterizations := fonts.Stats()
	log.Printf("Saved %s (%dx%d), glyph cache: %d cached, %d hits, %d misses, %d rasterized\n",
		*output, *width, *height, fonts.Len(), hits, misses, rasterizations)
}

// loadFont reads the font at path, falling back to the embedded Go
// Regular face.
func loadFont(path string) []byte {
	if path == "" {
		return goregular.TTF
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Reading %s failed (%v), using embedded font", path, err)
		return goregular.TTF
	}
	return data
}

func sourceOptions(backend string) []text.SourceOption {
	if backend == "" {
		return nil
	}
	return []text.SourceOption{text.WithParser(backend)}
}

// singleSurface hands out one owned framebuffer every frame.
type singleSurface struct {
	surface *ovl.Surface
}

func (p *singleSurface) Acquire() (*ovl.Surface, error) { return p.surface, nil }
func (p *singleSurface) Release(*ovl.Surface) error     { return nil }

// script replays a fixed input sequence, one snapshot per tick.
type script struct {
	frames []ovl.InputState
}

func (s *script) Poll() ovl.InputState {
	if len(s.frames) == 0 {
		return ovl.InputState{}
	}
	st := s.frames[0]
	s.frames = s.frames[1:]
	return st
}

// demoScript walks the focus down the list and toggles the last row.
func demoScript() []ovl.InputState {
	press := func(k ovl.Keys) ovl.InputState {
		return ovl.InputState{KeysDown: k, KeysHeld: k}
	}
	return []ovl.InputState{
		{}, // first frame builds the tree
		press(ovl.KeyDDown),
		press(ovl.KeyDDown),
		press(ovl.KeyA),
	}
}

// mainScreen is the demo's settings page.
type mainScreen struct {
	ovl.BaseScreen
	toggle *ovl.ListItem
	on     bool
}

func newMainScreen() *mainScreen {
	return &mainScreen{}
}

func (s *mainScreen) CreateUI() ovl.Element {
	frame := ovl.NewOverlayFrame("Overlay Demo", "sample session")

	list := ovl.NewList()
	for _, label := range []string{"General", "Display"} {
		item := ovl.NewListItem(label)
		item.SetValue(">")
		list.AddItem(item)
	}

	s.toggle = ovl.NewListItem("Extra logging")
	s.toggle.SetValue("Off")
	s.toggle.SetClickListener(func() bool {
		s.on = !s.on
		if s.on {
			s.toggle.SetValue("On")
		} else {
			s.toggle.SetValue("Off")
		}
		return true
	})
	list.AddItem(s.toggle)

	frame.SetContent(list)
	return frame
}
