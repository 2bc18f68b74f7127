// Package document renders a persisted Budget into a printable artifact.
package document

import (
	"bytes"
	"html/template"
	"strings"

	"servicios_ili/internal/domain/entities"
	"servicios_ili/internal/usecase/interfaces"
)

// itemsPerPage bounds the items table so long quotes paginate instead of
// overflowing the printable page.
const itemsPerPage = 18

// BudgetRenderer produces the PRESUPUESTO/REMITO document: header with
// issuer identity, document number and date, client block, items table,
// totals block and the two signature blocks (issuer blank, client raster
// when captured).
type BudgetRenderer struct {
	tmpl *template.Template
}

var _ interfaces.IDocumentRenderer = (*BudgetRenderer)(nil)

func NewBudgetRenderer() *BudgetRenderer {
	return &BudgetRenderer{tmpl: template.Must(template.New("budget").Parse(budgetTemplate))}
}

type docItem struct {
	Description string
	Quantity    string
	UnitPrice   string
	LineTotal   string
}

type docPage struct {
	Items []docItem
	Last  bool
}

type docData struct {
	Number       string
	Date         string
	ValidityDays int
	Client       entities.Client
	Pages        []docPage
	Subtotal     string
	Total        string
	Signature    template.URL
	Photo        template.URL
	Technician   string
}

func (r *BudgetRenderer) Render(b entities.Budget, c entities.Client) ([]byte, error) {
	data := docData{
		Number:       b.BudgetNumber,
		Date:         b.Date,
		ValidityDays: b.ValidityDays,
		Client:       c,
		Subtotal:     b.Subtotal.StringFixed(2),
		Total:        b.Total.StringFixed(2),
		Signature:    imageURL(b.SignatureData),
		Photo:        imageURL(b.PhotoURL),
		Technician:   b.TechnicianName,
	}

	items := make([]docItem, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, docItem{
			Description: it.Description,
			Quantity:    it.Quantity.String(),
			UnitPrice:   it.UnitPrice.StringFixed(2),
			LineTotal:   it.LineTotal().StringFixed(2),
		})
	}
	data.Pages = paginate(items)

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func paginate(items []docItem) []docPage {
	if len(items) == 0 {
		return []docPage{{Items: []docItem{}, Last: true}}
	}
	var pages []docPage
	for start := 0; start < len(items); start += itemsPerPage {
		end := start + itemsPerPage
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, docPage{Items: items[start:end]})
	}
	pages[len(pages)-1].Last = true
	return pages
}

// imageURL admits only embedded raster data URLs. Anything else is dropped
// rather than emitted into the document.
func imageURL(src string) template.URL {
	if strings.HasPrefix(src, "data:image/") {
		return template.URL(src)
	}
	return ""
}

const budgetTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Presupuesto {{.Number}}</title>
<style>
  body { font-family: 'Inter', sans-serif; color: #0a0e12; background: white; margin: 0; }
  .page { padding: 40px; page-break-after: always; }
  .page:last-child { page-break-after: auto; }
  .head { display: flex; justify-content: space-between; align-items: flex-start; border-bottom: 2px solid #00f2ea; padding-bottom: 20px; margin-bottom: 30px; }
  .brand h1 { margin: 0; color: #00f2ea; font-size: 32px; font-weight: 800; }
  .brand p { margin: 5px 0; font-size: 14px; color: #666; }
  .doc { text-align: right; }
  .doc h2 { margin: 0; font-size: 18px; }
  .doc .number { margin: 5px 0; font-weight: bold; color: #00f2ea; }
  .doc .date { margin: 0; font-size: 12px; }
  .meta { display: flex; justify-content: space-between; margin-bottom: 40px; }
  .meta h3 { font-size: 12px; text-transform: uppercase; color: #999; margin-bottom: 10px; }
  table { width: 100%; border-collapse: collapse; margin-bottom: 40px; }
  th { padding: 12px; font-size: 12px; text-transform: uppercase; background: #f8f9fa; border-bottom: 1px solid #eee; }
  td { padding: 12px; font-size: 14px; border-bottom: 1px solid #eee; }
  .num { text-align: right; }
  .qty { text-align: center; }
  .totals { display: flex; justify-content: flex-end; margin-bottom: 60px; }
  .totals .box { width: 250px; background: #f8f9fa; padding: 20px; border-radius: 8px; }
  .totals .row { display: flex; justify-content: space-between; margin-bottom: 10px; }
  .totals .grand { font-weight: bold; font-size: 18px; color: #00f2ea; border-top: 1px solid #ddd; padding-top: 10px; }
  .firmas { display: flex; gap: 40px; }
  .firma { flex: 1; text-align: center; }
  .firma .line { border-bottom: 1px solid #ccc; height: 80px; margin-bottom: 10px; display: flex; align-items: center; justify-content: center; }
  .firma p { margin: 0; font-size: 12px; color: #666; }
  .firma img { max-height: 70px; }
  .respaldo img { max-height: 200px; border-radius: 8px; }
</style>
</head>
<body>
{{- $doc := . -}}
{{- range .Pages}}
<div class="page">
  <div class="head">
    <div class="brand">
      <h1>ILI</h1>
      <p>Refrigeraci&oacute;n y Mantenimiento</p>
    </div>
    <div class="doc">
      <h2>PRESUPUESTO / REMITO</h2>
      <p class="number">{{$doc.Number}}</p>
      <p class="date">Fecha: {{$doc.Date}}</p>
    </div>
  </div>

  <div class="meta">
    <div>
      <h3>Cliente</h3>
      <p><strong>{{$doc.Client.Name}}</strong></p>
      <p>{{$doc.Client.Address}}</p>
      <p>CUIT: {{if $doc.Client.Cuit}}{{$doc.Client.Cuit}}{{else}}N/A{{end}}</p>
    </div>
    <div class="doc">
      <h3>Validez</h3>
      <p>{{$doc.ValidityDays}} d&iacute;as</p>
    </div>
  </div>

  <table>
    <thead>
      <tr>
        <th style="text-align:left">Descripci&oacute;n</th>
        <th class="qty">Cant.</th>
        <th class="num">P. Unit</th>
        <th class="num">Total</th>
      </tr>
    </thead>
    <tbody>
      {{- range .Items}}
      <tr>
        <td>{{.Description}}</td>
        <td class="qty">{{.Quantity}}</td>
        <td class="num">${{.UnitPrice}}</td>
        <td class="num"><strong>${{.LineTotal}}</strong></td>
      </tr>
      {{- end}}
    </tbody>
  </table>

  {{- if .Last}}
  <div class="totals">
    <div class="box">
      <div class="row"><span>Subtotal</span><span>${{$doc.Subtotal}}</span></div>
      <div class="row grand"><span>TOTAL</span><span>${{$doc.Total}}</span></div>
    </div>
  </div>

  <div class="firmas">
    <div class="firma">
      <div class="line"></div>
      <p>Firma ILI{{if $doc.Technician}} / {{$doc.Technician}}{{end}}</p>
    </div>
    <div class="firma">
      <div class="line">{{if $doc.Signature}}<img src="{{$doc.Signature}}" alt="">{{end}}</div>
      <p>Firma Cliente</p>
    </div>
  </div>

  {{- if $doc.Photo}}
  <div class="respaldo">
    <h3>Respaldo</h3>
    <img src="{{$doc.Photo}}" alt="">
  </div>
  {{- end}}
  {{- end}}
</div>
{{- end}}
</body>
</html>
`
