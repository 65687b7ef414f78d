package formatter

import (
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/stop-router/gtfs"
	"github.com/theoremus-urban-solutions/stop-router/planner"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>`

func routeXML(r *planner.Route) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString("<Route reachable=\"")
	b.WriteString(strconv.FormatBool(r.Reachable))
	b.WriteString("\">")
	writeStopXML(&b, "From", r.From)
	writeStopXML(&b, "To", r.To)
	if r.Reachable {
		b.WriteString("<Legs>")
		for _, l := range r.Legs {
			b.WriteString("<Leg from=\"")
			b.WriteString(strconv.Itoa(l.FromIndex))
			b.WriteString("\" to=\"")
			b.WriteString(strconv.Itoa(l.ToIndex))
			b.WriteString("\">")
			writeElem(&b, "FromStopID", l.FromStopID)
			writeElem(&b, "FromName", l.FromName)
			writeElem(&b, "ToStopID", l.ToStopID)
			writeElem(&b, "ToName", l.ToName)
			writeElem(&b, "Cost", formatCost(l.Cost))
			b.WriteString("</Leg>")
		}
		b.WriteString("</Legs>")
		writeElem(&b, "TotalCost", formatCost(r.Total))
	}
	b.WriteString("</Route>\n")
	return []byte(b.String())
}

func matchesXML(ms []planner.StopMatch) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString("<StopMatches>")
	for _, m := range ms {
		b.WriteString("<Match>")
		writeElem(&b, "Name", m.Name)
		for _, s := range m.Stops {
			writeStopXML(&b, "Stop", s)
		}
		b.WriteString("</Match>")
	}
	b.WriteString("</StopMatches>\n")
	return []byte(b.String())
}

func arrivalsXML(as []planner.Arrival) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString("<Arrivals>")
	for _, a := range as {
		b.WriteString("<Trip id=\"")
		b.WriteString(xmlEscape(a.TripID))
		b.WriteString("\">")
		for _, s := range a.At {
			writeStopXML(&b, "ArrivingAt", s)
		}
		b.WriteString("<Stops>")
		for _, s := range a.Stops {
			writeStopXML(&b, "Stop", s)
		}
		b.WriteString("</Stops>")
		b.WriteString("</Trip>")
	}
	b.WriteString("</Arrivals>\n")
	return []byte(b.String())
}

func writeStopXML(b *strings.Builder, tag string, s gtfs.Stop) {
	b.WriteString("<")
	b.WriteString(tag)
	b.WriteString(" id=\"")
	b.WriteString(xmlEscape(s.ID))
	b.WriteString("\">")
	b.WriteString(xmlEscape(s.Name))
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">")
}

func writeElem(b *strings.Builder, tag, v string) {
	if v == "" {
		return
	}
	b.WriteString("<")
	b.WriteString(tag)
	b.WriteString(">")
	b.WriteString(xmlEscape(v))
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">")
}

func xmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
