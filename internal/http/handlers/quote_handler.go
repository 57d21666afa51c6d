// README: Quote handlers for single quotes and service-type comparison.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"limoquote/internal/modules/fleet"
	"limoquote/internal/modules/pricing"
)

type QuoteHandler struct {
	pricing *pricing.Service
}

func NewQuoteHandler(svc *pricing.Service) *QuoteHandler {
	return &QuoteHandler{pricing: svc}
}

type quoteReq struct {
	VehicleID        string  `json:"vehicle_id"`
	Channel          string  `json:"channel"`
	ServiceType      string  `json:"service_type"`
	ServiceDate      string  `json:"service_date"`
	Hours            float64 `json:"hours"`
	EstimatedHours   float64 `json:"estimated_hours"`
	ZoneID           string  `json:"zone_id"`
	AirportCode      string  `json:"airport_code"`
	RouteOrigin      string  `json:"route_origin"`
	RouteDestination string  `json:"route_destination"`
	RouteService     string  `json:"route_service"`
	PickupTime       string  `json:"pickup_time"`
	VehicleCount     int     `json:"vehicle_count"`
	BookingDate      string  `json:"booking_date"`
}

func (r quoteReq) toCommand() (pricing.QuoteRequest, string) {
	if r.VehicleID == "" || r.Channel == "" || r.ServiceType == "" || r.ServiceDate == "" {
		return pricing.QuoteRequest{}, "vehicle_id, channel, service_type and service_date are required"
	}
	serviceDate, err := parseDate(r.ServiceDate)
	if err != nil {
		return pricing.QuoteRequest{}, "invalid service_date"
	}
	var bookingDate time.Time
	if r.BookingDate != "" {
		if bookingDate, err = parseDate(r.BookingDate); err != nil {
			return pricing.QuoteRequest{}, "invalid booking_date"
		}
	}
	return pricing.QuoteRequest{
		VehicleID:        fleet.VehicleID(r.VehicleID),
		Channel:          pricing.Channel(r.Channel),
		ServiceType:      pricing.ServiceType(r.ServiceType),
		ServiceDate:      serviceDate,
		Hours:            r.Hours,
		EstimatedHours:   r.EstimatedHours,
		ZoneID:           pricing.ZoneID(r.ZoneID),
		AirportCode:      pricing.AirportCode(r.AirportCode),
		RouteOrigin:      r.RouteOrigin,
		RouteDestination: r.RouteDestination,
		RouteService:     pricing.RouteServiceType(r.RouteService),
		PickupTime:       r.PickupTime,
		VehicleCount:     r.VehicleCount,
		BookingDate:      bookingDate,
	}, ""
}

func (h *QuoteHandler) Create(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	cmd, msg := req.toCommand()
	if msg != "" {
		writeError(c, http.StatusBadRequest, msg)
		return
	}
	b, err := h.pricing.Calculate(c.Request.Context(), cmd)
	if err != nil {
		writePricingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, b)
}

type compareReq struct {
	VehicleID      string  `json:"vehicle_id"`
	Channel        string  `json:"channel"`
	ServiceDate    string  `json:"service_date"`
	EstimatedHours float64 `json:"estimated_hours"`
	ZoneID         string  `json:"zone_id"`
	AirportCode    string  `json:"airport_code"`
	PickupTime     string  `json:"pickup_time"`
	BookingDate    string  `json:"booking_date"`
}

func (h *QuoteHandler) Compare(c *gin.Context) {
	var req compareReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.VehicleID == "" || req.Channel == "" || req.ServiceDate == "" || req.EstimatedHours <= 0 {
		writeError(c, http.StatusBadRequest, "vehicle_id, channel, service_date and estimated_hours are required")
		return
	}
	serviceDate, err := parseDate(req.ServiceDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid service_date")
		return
	}
	var bookingDate time.Time
	if req.BookingDate != "" {
		if bookingDate, err = parseDate(req.BookingDate); err != nil {
			writeError(c, http.StatusBadRequest, "invalid booking_date")
			return
		}
	}
	cmp, err := h.pricing.Compare(c.Request.Context(), pricing.CompareRequest{
		VehicleID:      fleet.VehicleID(req.VehicleID),
		Channel:        pricing.Channel(req.Channel),
		ServiceDate:    serviceDate,
		EstimatedHours: req.EstimatedHours,
		ZoneID:         pricing.ZoneID(req.ZoneID),
		AirportCode:    pricing.AirportCode(req.AirportCode),
		PickupTime:     req.PickupTime,
		BookingDate:    bookingDate,
	})
	if err != nil {
		writePricingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, cmp)
}
