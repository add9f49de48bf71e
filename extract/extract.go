// Package extract reads purchase order PDFs into structured records using
// Gemini. The model is constrained by a response schema, so the answer is
// guaranteed to be a single JSON object matching capex.ExtractedPO.
package extract

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/etnz/capex"
)

const model = "gemini-2.5-flash"

const prompt = `You are given a purchase order ("bon de commande") as a PDF.
Extract the order header and every line item. Amounts are in MAD; keep them
as plain numbers without separators. Dates come out as YYYY-MM-DD. The line
total is the amount printed on the line, not a recomputation.`

var lineSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"lineId":      {Type: genai.TypeString, Description: "Line item number or reference."},
		"description": {Type: genai.TypeString, Description: "Item designation."},
		"quantity":    {Type: genai.TypeNumber, Description: "Ordered quantity."},
		"unitPrice":   {Type: genai.TypeNumber, Description: "Unit price in MAD, taxes excluded."},
		"lineTotal":   {Type: genai.TypeNumber, Description: "Line total in MAD as printed."},
	},
	Required: []string{"lineId", "description", "quantity", "unitPrice", "lineTotal"},
}

var orderSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"poNumber":     {Type: genai.TypeString, Description: "Purchase order number."},
		"orderDate":    {Type: genai.TypeString, Description: "Order date, YYYY-MM-DD."},
		"totalOrdered": {Type: genai.TypeNumber, Description: "Order grand total in MAD."},
		"fournisseur":  {Type: genai.TypeString, Description: "Vendor name."},
		"details":      {Type: genai.TypeArray, Items: lineSchema},
	},
	Required: []string{"poNumber", "orderDate", "totalOrdered", "fournisseur", "details"},
}

// PurchaseOrder extracts the order described by a PDF document.
func PurchaseOrder(ctx context.Context, client *genai.Client, pdf []byte) (*capex.ExtractedPO, error) {
	contents := []*genai.Content{{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			{Text: prompt},
			{InlineData: &genai.Blob{MIMEType: "application/pdf", Data: pdf}},
		},
	}}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   orderSchema,
	}

	resp, err := client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("extracting purchase order: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("extracting purchase order: empty model response")
	}

	var po capex.ExtractedPO
	if err := json.Unmarshal([]byte(text), &po); err != nil {
		return nil, fmt.Errorf("decoding extraction %q: %w", text, err)
	}
	if po.PONumber == "" {
		return nil, fmt.Errorf("extraction found no order number in document")
	}
	return &po, nil
}
