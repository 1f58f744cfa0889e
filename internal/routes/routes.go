package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"parkgarage/internal/services"
	"parkgarage/internal/store"
)

// SetupRouter builds the engine and wires every route group against the
// injected database handle.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(ginlog.SetLogger(), gin.Recovery())

	st := store.New(db)
	ledger := services.NewCapacityLedger(st)
	issuer := services.NewReservationIssuer(st)
	calculator := services.NewFeeCalculator(st)
	gate := services.NewCredentialGate(st)

	PersonRoutes(r, db)
	GarageRoutes(r, db, ledger)
	SpaceRoutes(r, ledger)
	VehicleRoutes(r, db)
	ReservationRoutes(r, db, issuer)
	PaymentRoutes(r, calculator)
	AuthRoutes(r, gate)

	return r
}
