package deck

import (
	"bytes"
	"fmt"
	"log"

	ppt "github.com/VantageDataChat/GoPPT"

	"chartdeck/domain/chart"
	"chartdeck/domain/core"
	"chartdeck/domain/deck"
)

// Chart placement on the target slide (EMU). The region is fixed rather
// than fitted to existing slide content.
const (
	emuPerInch = 914400

	chartOffsetX = int64(2 * emuPerInch)
	chartOffsetY = int64(2 * emuPerInch)
	chartWidth   = int64(6 * emuPerInch)
	chartHeight  = int64(4 * emuPerInch)
)

const seriesName = "Values"

// Composer builds PPTX documents with an embedded chart using GoPPT.
type Composer struct{}

// NewComposer creates a new presentation composer.
func NewComposer() *Composer {
	return &Composer{}
}

// Compose implements ports.DeckComposer.
func (c *Composer) Compose(template []byte, position int, kind chart.Kind, series chart.Series) ([]byte, error) {
	p, err := c.loadBase(template)
	if err != nil {
		return nil, err
	}

	c.padSlides(p, position)

	slide, err := p.GetSlide(position - 1)
	if err != nil {
		return nil, fmt.Errorf("slide %d unavailable after padding: %w", position, err)
	}

	c.insertChart(slide, kind, series)

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("failed to create PPT writer: %w", err)
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to save PPT: %w", err)
	}

	log.Printf("[Composer] Deck composed (%d slides, %s chart, %d points, %d bytes)",
		p.GetSlideCount(), kind, len(series), buf.Len())
	return buf.Bytes(), nil
}

// loadBase opens the uploaded template, or starts a fresh deck when none
// was supplied.
func (c *Composer) loadBase(template []byte) (*ppt.Presentation, error) {
	if len(template) == 0 {
		p := ppt.New()
		p.GetDocumentProperties().Creator = "chartdeck"
		return p, nil
	}

	r, err := ppt.NewReader(ppt.ReaderPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("failed to create PPT reader: %w", err)
	}
	p, err := r.(*ppt.PPTXReader).ReadFromReader(bytes.NewReader(template), int64(len(template)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrTemplateInvalid, err)
	}
	return p, nil
}

// padSlides appends slides until the deck holds at least position slides.
// GoPPT slides carry no layout reference, so padded slides are created
// blank; the layout preference over the template's masters only picks the
// name reported in the log.
func (c *Composer) padSlides(p *ppt.Presentation, position int) {
	if p.GetSlideCount() >= position {
		return
	}

	if name := c.paddingLayoutName(p); name != "" {
		log.Printf("[Composer] Padding to slide %d (layout %q)", position, name)
	}
	for p.GetSlideCount() < position {
		p.CreateSlide()
	}
}

// paddingLayoutName applies the blank/title preference over the template's
// layout names, falling back to the stock index. Fresh decks have no
// masters and yield "".
func (c *Composer) paddingLayoutName(p *ppt.Presentation) string {
	var names []string
	for _, master := range p.GetSlideMasters() {
		for _, layout := range master.SlideLayouts {
			names = append(names, layout.Name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	return names[deck.SelectLayout(names, deck.DefaultLayoutIndex)]
}

// insertChart places the chart shape at the fixed placeholder region and
// wires up series data and the legend.
func (c *Composer) insertChart(slide *ppt.Slide, kind chart.Kind, series chart.Series) {
	shape := slide.CreateChartShape()
	shape.SetOffsetX(chartOffsetX).SetOffsetY(chartOffsetY)
	shape.SetWidth(chartWidth).SetHeight(chartHeight)

	shape.GetPlotArea().SetType(c.plotType(kind, c.buildSeries(kind, series)))

	legend := shape.GetLegend()
	legend.Visible = true
	legend.Position = ppt.LegendRight
}

// buildSeries converts the extracted points into a GoPPT series. Pie charts
// get value and percentage data labels; GoPPT exposes no label number
// format, so the percent rendering is the library's own.
func (c *Composer) buildSeries(kind chart.Kind, series chart.Series) *ppt.ChartSeries {
	data := ppt.NewChartSeriesOrdered(seriesName, series.Categories(), series.Values())
	if kind == chart.KindPie {
		data.ShowValue = true
		data.ShowPercentage = true
	}
	return data
}

// plotType maps a chart kind to its GoPPT plot area type with the series
// attached. Unrecognized kinds behave as clustered columns instead of
// failing.
func (c *Composer) plotType(kind chart.Kind, data *ppt.ChartSeries) ppt.ChartType {
	switch kind {
	case chart.KindPie:
		t := ppt.NewPieChart()
		t.AddSeries(data)
		return t
	case chart.KindLine:
		t := ppt.NewLineChart()
		t.AddSeries(data)
		return t
	case chart.KindScatter:
		t := ppt.NewScatterChart()
		t.AddSeries(data)
		return t
	case chart.KindArea:
		t := ppt.NewAreaChart()
		t.AddSeries(data)
		return t
	default:
		t := ppt.NewBarChart()
		t.AddSeries(data)
		return t
	}
}
