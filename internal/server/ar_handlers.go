package server

import (
	"context"
	"encoding/json"
	"log"

	"campusconnect/internal/ar"
	"campusconnect/internal/models"
	"campusconnect/internal/observability"
	"campusconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// ProjectAR handles POST /api/ar/project. It projects every campus location
// into screen space for the reported viewer position and heading. The
// projection is stateless; clients call it per frame or use the WebSocket
// stream instead.
func (s *Server) ProjectAR(c *fiber.Ctx) error {
	var viewer ar.Viewer
	if err := c.BodyParser(&viewer); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.ValidateCoordinates(viewer.Latitude, viewer.Longitude); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	locations, err := s.locationRepo.ListAll(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}

	markers := ar.Project(viewer, locations)
	observability.ARFramesTotal.WithLabelValues("http").Inc()

	return c.JSON(fiber.Map{"markers": markers})
}

// arFrame is one client position/heading update on the AR stream.
type arFrame struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Heading   float64 `json:"heading"`
}

// WebSocketARHandler streams marker projections: the client sends a frame
// per sensor update and receives the re-projected marker set for each one.
func (s *Server) WebSocketARHandler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		observability.ARStreamConnections.Inc()
		defer observability.ARStreamConnections.Dec()

		ctx := context.Background()

		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				return
			}

			var frame arFrame
			if err := json.Unmarshal(raw, &frame); err != nil {
				_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"invalid frame"}`))
				continue
			}
			if err := validation.ValidateCoordinates(frame.Latitude, frame.Longitude); err != nil {
				_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"invalid coordinates"}`))
				continue
			}

			locations, err := s.locationRepo.ListAll(ctx)
			if err != nil {
				log.Printf("AR stream: location load failed: %v", err)
				_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"locations unavailable"}`))
				continue
			}

			markers := ar.Project(ar.Viewer{
				Latitude:  frame.Latitude,
				Longitude: frame.Longitude,
				Heading:   frame.Heading,
			}, locations)
			observability.ARFramesTotal.WithLabelValues("websocket").Inc()

			payload, err := json.Marshal(fiber.Map{"markers": markers})
			if err != nil {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		}
	})
}
