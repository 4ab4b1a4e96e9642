package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-command/internal/application/dto"
	"github.com/jhoicas/inventory-command/internal/domain"
	"github.com/jhoicas/inventory-command/internal/domain/entity"
	"github.com/jhoicas/inventory-command/internal/domain/projection"
)

// EventDateLayout fecha de las líneas de entrada/salida en el detalle ("05-01-2025").
const EventDateLayout = "02-01-2006"

// DrillDownUseCase detalle por SKU, por orden de compra y por pedido de cliente.
type DrillDownUseCase struct {
	projection *ProjectionUseCase
	tables     TablesProvider
}

// NewDrillDownUseCase construye el caso de uso.
func NewDrillDownUseCase(projection *ProjectionUseCase, tables TablesProvider) *DrillDownUseCase {
	return &DrillDownUseCase{projection: projection, tables: tables}
}

// Item serie proyectada de un SKU más sus entradas y salidas (todas, no solo las de la ventana).
func (uc *DrillDownUseCase) Item(ctx context.Context, skuID string, q dto.ProjectionQuery) (*dto.ItemDetailResponse, error) {
	skuID = strings.TrimSpace(skuID)
	if skuID == "" {
		return nil, domain.ErrInvalidInput
	}
	run, err := uc.projection.Run(ctx, q)
	if err != nil {
		return nil, err
	}

	var sku *entity.SKU
	for i := range run.Tables.SKUs {
		if run.Tables.SKUs[i].ID == skuID {
			sku = &run.Tables.SKUs[i]
			break
		}
	}
	if sku == nil {
		return nil, domain.ErrNotFound
	}

	series := projection.ItemSeries(run.Cells, skuID)
	out := &dto.ItemDetailResponse{
		SKUID:           sku.ID,
		Description:     sku.Description,
		SafetyThreshold: sku.SafetyThreshold,
		StartDate:       run.Start.Format(dto.DateLayout),
		Days:            run.Days,
		Series:          make([]dto.ItemPointDTO, 0, len(series)),
		Inbound:         []dto.EventLineDTO{},
		Outbound:        []dto.EventLineDTO{},
	}
	for _, c := range series {
		out.Series = append(out.Series, dto.ItemPointDTO{
			Date:    c.Date.Format(dto.DateLayout),
			Stock:   c.Stock,
			Status:  string(c.Status),
			Marker:  string(c.Marker),
			Display: c.Display,
		})
	}
	for _, in := range run.Tables.Inbound {
		if in.SKUID == skuID {
			out.Inbound = append(out.Inbound, eventLine(in.PONumber, in.SKUID, sku.Description, in.Quantity, in.ArrivalDate))
		}
	}
	for _, o := range run.Tables.Outbound {
		if o.SKUID == skuID {
			out.Outbound = append(out.Outbound, eventLine(o.OrderNumber, o.SKUID, sku.Description, o.Quantity, o.DispatchDate))
		}
	}
	return out, nil
}

// PurchaseOrders números de orden de compra distintos, en orden de aparición.
func (uc *DrillDownUseCase) PurchaseOrders(ctx context.Context) (*dto.OrderListResponse, error) {
	tables, err := uc.tables.Load(ctx)
	if err != nil {
		return nil, err
	}
	numbers := make([]string, 0, len(tables.Inbound))
	for _, in := range tables.Inbound {
		numbers = append(numbers, in.PONumber)
	}
	return orderList(numbers), nil
}

// PurchaseOrder líneas de una orden de compra con la descripción del SKU (vacía si el SKU no existe).
func (uc *DrillDownUseCase) PurchaseOrder(ctx context.Context, number string) (*dto.OrderDetailResponse, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, domain.ErrInvalidInput
	}
	tables, err := uc.tables.Load(ctx)
	if err != nil {
		return nil, err
	}
	desc := descriptions(tables.SKUs)
	out := &dto.OrderDetailResponse{Number: number, Lines: []dto.EventLineDTO{}}
	for _, in := range tables.Inbound {
		if in.PONumber == number {
			out.Lines = append(out.Lines, eventLine(in.PONumber, in.SKUID, desc[in.SKUID], in.Quantity, in.ArrivalDate))
		}
	}
	if len(out.Lines) == 0 {
		return nil, domain.ErrNotFound
	}
	return out, nil
}

// Orders números de pedido de cliente distintos, en orden de aparición.
func (uc *DrillDownUseCase) Orders(ctx context.Context) (*dto.OrderListResponse, error) {
	tables, err := uc.tables.Load(ctx)
	if err != nil {
		return nil, err
	}
	numbers := make([]string, 0, len(tables.Outbound))
	for _, o := range tables.Outbound {
		numbers = append(numbers, o.OrderNumber)
	}
	return orderList(numbers), nil
}

// Order líneas de un pedido de cliente con la descripción del SKU.
func (uc *DrillDownUseCase) Order(ctx context.Context, number string) (*dto.OrderDetailResponse, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, domain.ErrInvalidInput
	}
	tables, err := uc.tables.Load(ctx)
	if err != nil {
		return nil, err
	}
	desc := descriptions(tables.SKUs)
	out := &dto.OrderDetailResponse{Number: number, Lines: []dto.EventLineDTO{}}
	for _, o := range tables.Outbound {
		if o.OrderNumber == number {
			out.Lines = append(out.Lines, eventLine(o.OrderNumber, o.SKUID, desc[o.SKUID], o.Quantity, o.DispatchDate))
		}
	}
	if len(out.Lines) == 0 {
		return nil, domain.ErrNotFound
	}
	return out, nil
}

// orderList distintos y no vacíos, conservando el primer orden de aparición.
func orderList(numbers []string) *dto.OrderListResponse {
	out := &dto.OrderListResponse{Numbers: []string{}}
	seen := make(map[string]struct{}, len(numbers))
	for _, n := range numbers {
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out.Numbers = append(out.Numbers, n)
	}
	out.Total = len(out.Numbers)
	return out
}

func descriptions(skus []entity.SKU) map[string]string {
	m := make(map[string]string, len(skus))
	for _, s := range skus {
		if _, ok := m[s.ID]; !ok {
			m[s.ID] = s.Description
		}
	}
	return m
}

func eventLine(number, skuID, description string, qty decimal.Decimal, date time.Time) dto.EventLineDTO {
	line := dto.EventLineDTO{
		Number:      number,
		SKUID:       skuID,
		Description: description,
		Qty:         qty,
	}
	if !date.IsZero() {
		line.Date = date.Format(EventDateLayout)
	}
	return line
}
