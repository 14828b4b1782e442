// Package grpc exposes the secret-selfie server over gRPC. Only the standard
// health and reflection services are served; image traffic stays on HTTP.
package grpc

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-secret-selfie/internal/logger"
	"github.com/MKhiriev/go-secret-selfie/internal/service"
	"github.com/MKhiriev/go-secret-selfie/internal/utils"
)

// Health service names reported by the server.
const (
	StegoServiceName   = "selfie.Stego"
	GalleryServiceName = "selfie.Gallery"
)

// traceIDMetadataKey mirrors the X-Trace-ID HTTP header.
const traceIDMetadataKey = "x-trace-id"

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// Register installs the health and reflection services on s and marks the
// stego service as serving. The gallery is reported as not serving when no
// database is configured.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(StegoServiceName, healthpb.HealthCheckResponse_SERVING)

	galleryStatus := healthpb.HealthCheckResponse_NOT_SERVING
	if h.services != nil && h.services.GalleryEnabled {
		galleryStatus = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus(GalleryServiceName, galleryStatus)
}

// Shutdown reports every service as not serving. Watchers are notified
// before the transport goes away.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// LoggingInterceptor attaches a trace ID and a request logger to the context
// of every unary call and writes an access log entry once it completes.
func (h *Handler) LoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDMetadataKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = h.traceIDs.Generate()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = utils.WithTraceID(l.WithContext(ctx), traceID)

	start := time.Now()
	resp, err := handler(ctx, req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
