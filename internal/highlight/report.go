package highlight

import (
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// WriteReport renders the highlight timeline and the full transcript into a
// styled docx at outputPath.
func WriteReport(title string, points []Point, transcript, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addHeading(doc, title, 16)
	doc.AddParagraph("")

	addHeading(doc, "Highlighted Moments", 15)
	if len(points) == 0 {
		addText(doc, "No highlights extracted.")
	}
	for _, p := range points {
		line := FormatTimestamp(p.StartSecs) + " - " + FormatTimestamp(p.EndSecs)
		para := doc.AddParagraph("")
		para.AddText(line).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		para.AddText("  " + strings.TrimSpace(p.Summary)).Font(fontName).Size(fontSize).Color("000000")
	}

	doc.AddParagraph("")
	addHeading(doc, "Transcript", 15)
	for _, line := range strings.Split(transcript, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		addText(doc, trimmed)
	}

	return doc.SaveTo(outputPath)
}

func addHeading(doc *docx.RootDoc, text string, size uint64) {
	p := doc.AddParagraph("")
	p.AddText(text).Font(fontName).Size(size).Color("000000").Bold(true)
}

func addText(doc *docx.RootDoc, text string) {
	p := doc.AddParagraph("")
	p.AddText(text).Font(fontName).Size(fontSize).Color("000000")
}
