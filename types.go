package capex

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// coerceString returns the string form of a loosely typed store cell: order
// numbers, request numbers and budget years are free-format columns that may
// hold text or numbers depending on who filled the row.
func coerceString(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	if s[0] == '"' {
		var q string
		if err := json.Unmarshal(raw, &q); err != nil {
			return ""
		}
		return strings.TrimSpace(q)
	}
	return s
}

// coerceInt reads an integer cell, tolerating quoted values.
func coerceInt(raw json.RawMessage) int {
	return int(lenientDecimal(raw).IntPart())
}

// Project is one budget line of the pipeline. RowIndex is the positional key
// in the Projects sheet: it must be carried unchanged on every update and
// delete. An empty PONumber means no order has been placed yet.
type Project struct {
	ID              string
	RowIndex        int
	Name            string
	PONumber        string
	Status          string
	Vendor          string
	BudgetCategory  string
	AllocatedBudget Money
	TotalOrdered    Money
	RequestNumber   string
	OrderDate       string
	BudgetYear      string

	// Extra keeps the sheet columns this package does not interpret, so a
	// full-record update does not erase them.
	Extra map[string]json.RawMessage
}

func (p *Project) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	take := func(key string) json.RawMessage {
		v := raw[key]
		delete(raw, key)
		return v
	}

	p.ID = coerceString(take("id"))
	p.RowIndex = coerceInt(take("rowIndex"))
	p.Name = coerceString(take("projectName"))
	p.PONumber = coerceString(take("poNumber"))
	p.Status = coerceString(take("statut"))
	p.Vendor = coerceString(take("fournisseur"))
	p.BudgetCategory = coerceString(take("budgetCategory"))
	p.AllocatedBudget = Money{value: lenientDecimal(take("allocatedBudget"))}
	p.TotalOrdered = Money{value: lenientDecimal(take("totalOrdered"))}
	p.RequestNumber = coerceString(take("numDA"))
	p.OrderDate = coerceString(take("orderDate"))
	p.BudgetYear = coerceString(take("yearofbudget"))

	if len(raw) > 0 {
		p.Extra = raw
	} else {
		p.Extra = nil
	}
	return nil
}

func (p Project) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("id", p.ID)
	w.Optional("rowIndex", p.RowIndex)
	w.Append("projectName", p.Name)
	w.Append("poNumber", p.PONumber)
	w.Append("statut", p.Status)
	w.Append("fournisseur", p.Vendor)
	w.Append("budgetCategory", p.BudgetCategory)
	w.Append("allocatedBudget", p.AllocatedBudget)
	w.Append("totalOrdered", p.TotalOrdered)
	w.Optional("numDA", p.RequestNumber)
	w.Optional("orderDate", p.OrderDate)
	w.Optional("yearofbudget", p.BudgetYear)
	for _, k := range sortedKeys(p.Extra) {
		w.Append(k, p.Extra[k])
	}
	return w.MarshalJSON()
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Forecast holds the twelve month-bucket quantities of an order line,
// indexed in calendar order. A bucket absent from the sheet reads as zero.
type Forecast [12]Quantity

// Total sums all twelve buckets.
func (f Forecast) Total() Quantity {
	var t Quantity
	for _, q := range f {
		t = t.Add(q)
	}
	return t
}

// monthIndex returns the calendar index of a bucket key, or -1.
func monthIndex(key string) int {
	for i, m := range Months {
		if m == key {
			return i
		}
	}
	return -1
}

// OrderDetail is one line item of a purchase order. LineID is unique within
// an order only. LineTotal comes from the sheet and may drift from
// Quantity×UnitPrice; consumers must tolerate that.
type OrderDetail struct {
	PONumber         string
	LineID           string
	Description      string
	Quantity         Quantity
	UnitPrice        Money
	LineTotal        Money
	Forecast         Forecast
	QuantityReceived Quantity
}

// Remaining is the quantity ordered but not yet received.
func (d OrderDetail) Remaining() Quantity {
	return d.Quantity.Sub(d.QuantityReceived)
}

func (d *OrderDetail) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.PONumber = coerceString(raw["poNumber"])
	d.LineID = coerceString(raw["lineId"])
	d.Description = coerceString(raw["description"])
	d.Quantity = Quantity{value: lenientDecimal(raw["quantity"])}
	d.UnitPrice = Money{value: lenientDecimal(raw["unitPrice"])}
	d.LineTotal = Money{value: lenientDecimal(raw["lineTotal"])}
	d.QuantityReceived = Quantity{value: lenientDecimal(raw["quantityReceived"])}
	for i, m := range Months {
		d.Forecast[i] = Quantity{value: lenientDecimal(raw[m])}
	}
	return nil
}

func (d OrderDetail) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("poNumber", d.PONumber)
	w.Append("lineId", d.LineID)
	w.Append("description", d.Description)
	w.Append("quantity", d.Quantity)
	w.Append("unitPrice", d.UnitPrice)
	w.Append("lineTotal", d.LineTotal)
	// updateForecasts replaces whole rows, so zero buckets are written out.
	for i, m := range Months {
		w.Append(m, d.Forecast[i])
	}
	w.Append("quantityReceived", d.QuantityReceived)
	return w.MarshalJSON()
}

// GlobalBudget is a budget category envelope. AllocatedBudget is expressed in
// millions of MAD; Allocated converts it to base units before it is combined
// with per-project amounts.
type GlobalBudget struct {
	RowIndex        int
	Category        string
	AllocatedBudget Quantity
}

// Allocated returns the envelope in MAD.
func (g GlobalBudget) Allocated() Money {
	return Money{value: g.AllocatedBudget.value.Mul(newDecimal(1_000_000))}
}

func (g *GlobalBudget) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	g.RowIndex = coerceInt(raw["rowIndex"])
	g.Category = coerceString(raw["budgetCategory"])
	g.AllocatedBudget = Quantity{value: lenientDecimal(raw["allocatedBudget"])}
	return nil
}

func (g GlobalBudget) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("budgetCategory", g.Category)
	w.Append("allocatedBudget", g.AllocatedBudget)
	w.Optional("rowIndex", g.RowIndex)
	return w.MarshalJSON()
}

// Snapshot is the full raw record triple as last retrieved from the store.
// It is always replaced wholesale; no partial update is ever applied to it.
type Snapshot struct {
	Projects      []Project      `json:"projects"`
	OrderDetails  []OrderDetail  `json:"orderDetails"`
	GlobalBudgets []GlobalBudget `json:"globalBudgets"`
}

// ProjectWithDetails is a Project carrying its order lines. It is a derived
// structure, recomputed on every snapshot change and never persisted.
type ProjectWithDetails struct {
	Project
	Details []OrderDetail
}

// ExtractedPO is the structured result of reading a purchase order PDF.
type ExtractedPO struct {
	PONumber     string          `json:"poNumber"`
	OrderDate    string          `json:"orderDate"`
	TotalOrdered Money           `json:"totalOrdered"`
	Vendor       string          `json:"fournisseur"`
	Details      []ExtractedLine `json:"details"`
}

// ExtractedLine is one line item read from a purchase order PDF.
type ExtractedLine struct {
	LineID      string   `json:"lineId"`
	Description string   `json:"description"`
	Quantity    Quantity `json:"quantity"`
	UnitPrice   Money    `json:"unitPrice"`
	LineTotal   Money    `json:"lineTotal"`
}

// ApplyOrder copies the order header fields of an extraction onto a project.
func (p *Project) ApplyOrder(po *ExtractedPO) {
	p.PONumber = po.PONumber
	p.OrderDate = po.OrderDate
	p.TotalOrdered = po.TotalOrdered
	p.Vendor = po.Vendor
}
