package xp

import (
	"bytes"
	"fmt"
	"time"

	"natanbot/bot/common"
	"natanbot/domain/entities"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
)

// RankCardFilename is the attachment name the profile embed points at
const RankCardFilename = "rank.png"

// CardStyle defines the layout of the rank card
type CardStyle struct {
	Width     int
	Height    int
	Padding   float64
	BarHeight float64
	Accent    [3]float64
	VIPAccent [3]float64
}

// RankCardGenerator draws rank cards
type RankCardGenerator struct {
	style CardStyle
}

// NewRankCardGenerator creates a generator with the default style
func NewRankCardGenerator() *RankCardGenerator {
	return &RankCardGenerator{
		style: CardStyle{
			Width:     500,
			Height:    150,
			Padding:   20,
			BarHeight: 18,
			Accent:    [3]float64{0.35, 0.4, 0.95},
			VIPAccent: [3]float64{0.95, 0.77, 0.06},
		},
	}
}

// Generate renders the card for a member as PNG bytes
func (g *RankCardGenerator) Generate(name string, snap *entities.AccountSnapshot, rank int) ([]byte, error) {
	start := time.Now()
	defer func() {
		log.WithField("duration_ms", time.Since(start).Milliseconds()).
			WithField("user_id", snap.UserID).
			Debug("Rank card generation completed")
	}()

	w, h := float64(g.style.Width), float64(g.style.Height)
	pad := g.style.Padding
	accent := g.style.Accent
	if snap.IsVIP {
		accent = g.style.VIPAccent
	}

	dc := gg.NewContext(g.style.Width, g.style.Height)
	dc.SetFillRule(gg.FillRuleWinding)

	// Vertical gradient background
	for y := 0; y < g.style.Height; y++ {
		t := float64(y) / h
		dc.SetRGB(0.05+t*0.03, 0.05+t*0.04, 0.09+t*0.08)
		dc.DrawRectangle(0, float64(y), w, 1)
		dc.Fill()
	}

	dc.SetRGB(accent[0], accent[1], accent[2])
	dc.DrawRectangle(0, 0, 6, h)
	dc.Fill()

	title, err := loadFont(gobold.TTF, 24)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	body, err := loadFont(gomono.TTF, 14)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	dc.SetFontFace(title)
	dc.SetRGB(1, 1, 1)
	drawSharpText(dc, truncate(name, 22), pad, pad+24)

	rankText := "unranked"
	if rank > 0 {
		rankText = fmt.Sprintf("#%d", rank)
	}
	dc.SetFontFace(body)
	dc.SetRGB(accent[0], accent[1], accent[2])
	label := fmt.Sprintf("LEVEL %d  %s", snap.Level, rankText)
	lw, _ := dc.MeasureString(label)
	drawSharpText(dc, label, w-pad-lw, pad+22)

	// Progress bar track and fill
	barY := h - pad - g.style.BarHeight - 20
	barW := w - 2*pad
	dc.SetRGBA(1, 1, 1, 0.12)
	dc.DrawRoundedRectangle(pad, barY, barW, g.style.BarHeight, g.style.BarHeight/2)
	dc.Fill()

	if progress := snap.LevelProgress(); progress > 0 {
		dc.SetRGB(accent[0], accent[1], accent[2])
		dc.DrawRoundedRectangle(pad, barY, barW*progress, g.style.BarHeight, g.style.BarHeight/2)
		dc.Fill()
	}

	dc.SetRGB(0.8, 0.8, 0.85)
	xpText := fmt.Sprintf("%s / %s XP", common.FormatBalance(snap.Experience), common.FormatBalance(snap.NextLevelXP))
	drawSharpText(dc, xpText, pad, h-pad)
	msgText := fmt.Sprintf("%s msgs", common.FormatBalanceCompact(snap.Messages))
	mw, _ := dc.MeasureString(msgText)
	drawSharpText(dc, msgText, w-pad-mw, h-pad)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// drawSharpText draws text over a faint offset shadow
func drawSharpText(dc *gg.Context, text string, x, y float64) {
	dc.Push()
	dc.SetRGBA(0, 0, 0, 0.5)
	dc.DrawString(text, x+0.5, y+0.5)
	dc.Pop()

	dc.DrawString(text, x, y)
}

// loadFont loads a font from byte data
func loadFont(fontData []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(fontData)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:       size,
		DPI:        72,
		Hinting:    font.HintingFull,
		SubPixelsX: 4,
		SubPixelsY: 4,
	}), nil
}
