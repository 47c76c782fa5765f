package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-quotegen/pkg/quote"
	"github.com/goliatone/go-quotegen/pkg/render"
)

// orderFile is the on-disk order document schema, accepted as JSON or YAML.
// Prices travel as plain numbers at this boundary and are converted to
// decimals on load.
type orderFile struct {
	Items []struct {
		Width           *int    `json:"width" yaml:"width"`
		Height          *int    `json:"height" yaml:"height"`
		Fabric          string  `json:"fabric" yaml:"fabric"`
		FabricType      string  `json:"fabricType" yaml:"fabricType"`
		Color           string  `json:"color" yaml:"color"`
		Location        string  `json:"location" yaml:"location"`
		HeavyDutyWinder bool    `json:"heavyDutyWinder" yaml:"heavyDutyWinder"`
		DualBracket     bool    `json:"dualBracket" yaml:"dualBracket"`
		Motorised       bool    `json:"motorised" yaml:"motorised"`
		LinePrice       float64 `json:"linePrice" yaml:"linePrice"`
	} `json:"items" yaml:"items"`

	Fees struct {
		ExcludeDelivery          bool `json:"excludeDelivery" yaml:"excludeDelivery"`
		ExcludeInstallation      bool `json:"excludeInstallation" yaml:"excludeInstallation"`
		ExcludeRemoval           bool `json:"excludeRemoval" yaml:"excludeRemoval"`
		DeliveryQty              *int `json:"deliveryQty" yaml:"deliveryQty"`
		RemovalQty               int  `json:"removalQty" yaml:"removalQty"`
		RemoteCount              int  `json:"remoteCount" yaml:"remoteCount"`
		SingleChannelRemoteCount int  `json:"singleChannelRemoteCount" yaml:"singleChannelRemoteCount"`
		ChargerCount             int  `json:"chargerCount" yaml:"chargerCount"`
		CordCount                int  `json:"cordCount" yaml:"cordCount"`
	} `json:"fees" yaml:"fees"`

	Metadata struct {
		QuoteNumber     string   `json:"quoteNumber" yaml:"quoteNumber"`
		IssueDate       string   `json:"issueDate" yaml:"issueDate"`
		DueDate         string   `json:"dueDate" yaml:"dueDate"`
		CustomerName    string   `json:"customerName" yaml:"customerName"`
		Address         string   `json:"address" yaml:"address"`
		Phone           string   `json:"phone" yaml:"phone"`
		Email           string   `json:"email" yaml:"email"`
		Notes           string   `json:"notes" yaml:"notes"`
		Terms           string   `json:"terms" yaml:"terms"`
		FinalOfferPrice *float64 `json:"finalOfferPrice" yaml:"finalOfferPrice"`
	} `json:"metadata" yaml:"metadata"`
}

func readOrderFile(path string) (render.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return render.Request{}, err
	}

	var file orderFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".json":
		err = json.Unmarshal(data, &file)
	default:
		return render.Request{}, fmt.Errorf("unsupported order format %q", filepath.Ext(path))
	}
	if err != nil {
		return render.Request{}, fmt.Errorf("decode order document: %w", err)
	}

	return file.toRequest(), nil
}

func (f orderFile) toRequest() render.Request {
	items := make([]quote.Item, 0, len(f.Items))
	for _, raw := range f.Items {
		items = append(items, quote.Item{
			Width:           raw.Width,
			Height:          raw.Height,
			Fabric:          raw.Fabric,
			FabricType:      quote.FabricType(raw.FabricType),
			Color:           raw.Color,
			Location:        raw.Location,
			HeavyDutyWinder: raw.HeavyDutyWinder,
			DualBracket:     raw.DualBracket,
			Motorised:       raw.Motorised,
			LinePrice:       decimal.NewFromFloat(raw.LinePrice),
		})
	}

	meta := quote.Metadata{
		QuoteNumber:  f.Metadata.QuoteNumber,
		IssueDate:    f.Metadata.IssueDate,
		DueDate:      f.Metadata.DueDate,
		CustomerName: f.Metadata.CustomerName,
		Address:      f.Metadata.Address,
		Phone:        f.Metadata.Phone,
		Email:        f.Metadata.Email,
		Notes:        f.Metadata.Notes,
		Terms:        f.Metadata.Terms,
	}
	if f.Metadata.FinalOfferPrice != nil {
		offer := decimal.NewFromFloat(*f.Metadata.FinalOfferPrice)
		meta.FinalOfferPrice = &offer
	}

	return render.Request{
		Order: quote.Order{Items: items},
		Fees: quote.FeeSelection{
			ExcludeDelivery:          f.Fees.ExcludeDelivery,
			ExcludeInstallation:      f.Fees.ExcludeInstallation,
			ExcludeRemoval:           f.Fees.ExcludeRemoval,
			DeliveryQty:              f.Fees.DeliveryQty,
			RemovalQty:               f.Fees.RemovalQty,
			RemoteCount:              f.Fees.RemoteCount,
			SingleChannelRemoteCount: f.Fees.SingleChannelRemoteCount,
			ChargerCount:             f.Fees.ChargerCount,
			CordCount:                f.Fees.CordCount,
		},
		Meta: meta,
	}
}

// ensureQuoteNumber backfills a generated quote number so the document title
// is never blank.
func ensureQuoteNumber(meta *quote.Metadata) {
	if strings.TrimSpace(meta.QuoteNumber) != "" {
		return
	}
	meta.QuoteNumber = "Q-" + strings.ToUpper(uuid.NewString()[:8])
}
