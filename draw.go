package cardmaker

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/opentype"
)

// renderPage draws every layer of one card onto a fresh canvas. Layer order
// matters: bars and the school disc go down first so text and icons sit on
// top of them.
func (c *Composer) renderPage(spell *Spell, school CategoryStyle, page Page, continued bool) (image.Image, error) {
	t := c.cfg.Template
	dc := gg.NewContext(t.Canvas.W, t.Canvas.H)
	dc.SetColor(color.White)
	dc.Clear()

	schoolBg, err := ParseHexColor(school.BgColor)
	if err != nil {
		return nil, err
	}
	schoolFg, err := ParseHexColor(school.FgColor)
	if err != nil {
		return nil, err
	}
	black, err := ParseHexColor(t.Colors.Black)
	if err != nil {
		return nil, err
	}

	c.drawBars(dc, schoolBg)
	if err := c.drawSchoolIcon(dc, school, black); err != nil {
		return nil, err
	}
	if err := c.drawClassList(dc, spell, schoolBg); err != nil {
		return nil, err
	}
	if err := c.drawParams(dc, spell, black); err != nil {
		return nil, err
	}
	if err := c.drawIndicators(dc, spell, black); err != nil {
		return nil, err
	}
	if err := c.drawTitle(dc, spell, schoolFg, continued); err != nil {
		return nil, err
	}
	if err := c.drawLevel(dc, spell, schoolFg); err != nil {
		return nil, err
	}
	if err := c.drawRules(dc, page, black); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func (c *Composer) drawBars(dc *gg.Context, bg color.Color) {
	t := c.cfg.Template
	dc.SetColor(bg)
	dc.DrawRectangle(float64(t.Bars.Top.X), float64(t.Bars.Top.Y), float64(t.Bars.Top.W), float64(t.Bars.Top.H))
	dc.DrawRectangle(float64(t.Bars.Mid.X), float64(t.Bars.Mid.Y), float64(t.Bars.Mid.W), float64(t.Bars.Mid.H))
	dc.Fill()
}

// drawSchoolIcon fills the school disc and centers the school's icon on it,
// downscaling the icon when it exceeds the disc diameter. Icons are never
// upscaled.
func (c *Composer) drawSchoolIcon(dc *gg.Context, school CategoryStyle, black color.Color) error {
	disc := c.cfg.Template.Icons.School
	dc.SetColor(black)
	dc.DrawCircle(float64(disc.CX), float64(disc.CY), float64(disc.Radius))
	dc.Fill()

	icon, err := c.res.Image(school.Icon)
	if err != nil {
		return err
	}
	diameter := disc.Radius * 2
	if icon.Bounds().Dx() > diameter || icon.Bounds().Dy() > diameter {
		icon = imaging.Fit(icon, diameter, diameter, imaging.Lanczos)
	}
	dc.DrawImageAnchored(icon, disc.CX, disc.CY, 0.5, 0.5)
	return nil
}

// drawClassList renders every configured class name in the sidebar, dimmed
// in grey unless the spell belongs to that class, in which case the name is
// drawn in the school color with a marker bar flush against the right edge
// of the top bar.
func (c *Composer) drawClassList(dc *gg.Context, spell *Spell, schoolBg color.Color) error {
	t := c.cfg.Template
	cl := t.ClassList

	grey, err := ParseHexColor(t.Colors.Grey)
	if err != nil {
		return err
	}

	classes := c.cfg.General.Classes
	lineH := cl.H / len(classes)
	rightEdge := t.Bars.Top.X + t.Bars.Top.W

	for i, class := range classes {
		active := spellHasClass(spell, class)
		col := color.Color(grey)
		if active {
			col = schoolBg
		}

		box := TextBox{
			Box:     Box{X: cl.X, Y: cl.Y + i*lineH, W: cl.W, H: lineH},
			MaxSize: cl.MaxSize,
			MinSize: cl.MinSize,
		}
		if err := c.fitAndDraw(dc, t.Fonts.Main, class, box, 1, 0.5, col); err != nil {
			return fmt.Errorf("class list entry %q: %w", class, err)
		}

		if active {
			markerH := float64(lineH) * cl.Marker.HPct
			markerY := float64(box.Y) + float64(lineH)*cl.Marker.YPadPct
			dc.SetColor(schoolBg)
			dc.DrawRectangle(float64(rightEdge-cl.Marker.W), markerY, float64(cl.Marker.W), markerH)
			dc.Fill()
		}
	}
	return nil
}

// drawParams renders the range, casting time, and duration rows: label in
// the main font, value in bold. Empty values leave the slot blank.
func (c *Composer) drawParams(dc *gg.Context, spell *Spell, black color.Color) error {
	t := c.cfg.Template
	params := []struct {
		label string
		value string
		boxes LabeledBox
	}{
		{"Range", spell.Range, t.Metadata.Range},
		{"Casting Time", spell.CastTime, t.Metadata.CastTime},
		{"Duration", spell.Duration, t.Metadata.Duration},
	}
	for _, p := range params {
		if err := c.fitAndDraw(dc, t.Fonts.Main, p.label, p.boxes.Label, 0, 0.5, black); err != nil {
			return fmt.Errorf("%s label: %w", p.label, err)
		}
		if err := c.fitAndDraw(dc, t.Fonts.MainBold, p.value, p.boxes.Value, 0, 0.5, black); err != nil {
			return fmt.Errorf("%s value: %w", p.label, err)
		}
	}
	return nil
}

// drawIndicators lays the casting strip down and overlays one indicator
// icon per component the spell carries. A costly material component also
// prints its cost, suffixed with an asterisk when consumed.
func (c *Composer) drawIndicators(dc *gg.Context, spell *Spell, black color.Color) error {
	t := c.cfg.Template

	strip, err := c.res.Image(t.Icons.CastStrip.Icon)
	if err != nil {
		return err
	}
	dc.DrawImage(strip, t.Icons.CastStrip.X, t.Icons.CastStrip.Y)

	for _, name := range spell.ComponentFlags() {
		style, err := c.cfg.ComponentStyle(name)
		if err != nil {
			return err
		}
		pos, ok := t.Icons.Indicators[name]
		if !ok {
			return fmt.Errorf("%w: no indicator position for %q", ErrConfigValidation, name)
		}
		icon, err := c.res.Image(style.Icon)
		if err != nil {
			return err
		}
		dc.DrawImage(icon, pos.X, pos.Y)
	}

	if spell.MaterialCostly && spell.MaterialCost != "" {
		cost := spell.MaterialCost
		if spell.MaterialConsumed {
			cost += "*"
		}
		if err := c.fitAndDraw(dc, t.Fonts.Main, cost, t.Metadata.MaterialCost, 0, 1, black); err != nil {
			return fmt.Errorf("material cost: %w", err)
		}
	}
	return nil
}

func (c *Composer) drawTitle(dc *gg.Context, spell *Spell, fg color.Color, continued bool) error {
	t := c.cfg.Template
	title := spell.Name
	if continued {
		title += " " + t.ContinuedMarker
	}
	if err := c.fitAndDraw(dc, t.Fonts.Title, title, t.Title, 0, 0.5, fg); err != nil {
		return fmt.Errorf("title: %w", err)
	}
	return nil
}

func (c *Composer) drawLevel(dc *gg.Context, spell *Spell, fg color.Color) error {
	t := c.cfg.Template
	if err := c.fitAndDraw(dc, t.Fonts.MainBold, spell.LevelLabel(), t.Metadata.Level, 0, 0.5, fg); err != nil {
		return fmt.Errorf("level: %w", err)
	}
	return nil
}

// drawRules paints the pre-fitted rules text for this page. The fit was
// computed during pagination, so no size search happens here.
func (c *Composer) drawRules(dc *gg.Context, page Page, black color.Color) error {
	if len(page.Fit.Lines) == 0 {
		return nil
	}
	fnt, err := c.res.Font(c.cfg.Template.Fonts.Main)
	if err != nil {
		return err
	}
	return drawFit(dc, fnt, page.Fit, c.cfg.Template.Rules.Box, 0, 0, black)
}

// fitAndDraw shrinks text to the box and paints it. ax and ay pick the
// anchor within the box: 0 is left/top, 0.5 center, 1 right/bottom.
func (c *Composer) fitAndDraw(dc *gg.Context, fontName, text string, box TextBox, ax, ay float64, col color.Color) error {
	if text == "" {
		return nil
	}
	fnt, err := c.res.Font(fontName)
	if err != nil {
		return err
	}
	fit, err := FitText(fnt, text, box)
	if err != nil {
		return err
	}
	return drawFit(dc, fnt, fit, box.Box, ax, ay, col)
}

func drawFit(dc *gg.Context, fnt *opentype.Font, fit Fit, box Box, ax, ay float64, col color.Color) error {
	if len(fit.Lines) == 0 {
		return nil
	}
	face, err := newFace(fnt, fit.Size)
	if err != nil {
		return err
	}
	defer face.Close()

	dc.SetFontFace(face)
	dc.SetColor(col)

	total := fit.LineHeight * float64(len(fit.Lines))
	ascent := float64(face.Metrics().Ascent.Ceil())
	y := float64(box.Y) + (float64(box.H)-total)*ay + ascent
	for _, line := range fit.Lines {
		if line != "" {
			w, _ := dc.MeasureString(line)
			x := float64(box.X) + (float64(box.W)-w)*ax
			dc.DrawString(line, x, y)
		}
		y += fit.LineHeight
	}
	return nil
}
