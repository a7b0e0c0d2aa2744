// Package handlers exposes the HTTP surface. Handlers parse and validate
// the request, delegate to the matcher or mapper, and translate errors;
// they carry no business logic of their own.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pencilhq/orderform-gateway/internal/catalog"
	"github.com/pencilhq/orderform-gateway/internal/config"
	"github.com/pencilhq/orderform-gateway/internal/customers"
	"github.com/pencilhq/orderform-gateway/internal/erp"
	"github.com/pencilhq/orderform-gateway/internal/forms"
	"github.com/pencilhq/orderform-gateway/internal/mapping"
	"github.com/pencilhq/orderform-gateway/internal/validation"
)

// TokenRetriever exchanges a business-center id for a bearer token, empty on
// failure.
type TokenRetriever interface {
	Retrieve(ctx context.Context, clientID string) string
}

// HandlerConfig groups dependencies for the route handlers.
type HandlerConfig struct {
	Config *config.Config
	Tokens TokenRetriever
	Orders mapping.OrderCreator
	Logger *zap.Logger
}

// RegisterRoutes registers the order-form routes.
func RegisterRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()
	mapper := mapping.New(cfg.Config, cfg.Orders, cfg.Logger)

	// diagnostic placeholders polled by the form frontend
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, "orderform gateway")
	})
	r.GET("/serverIsActive", func(c *gin.Context) {
		c.JSON(http.StatusOK, "Connection is open")
	})

	r.POST("/retrieve_ac", func(c *gin.Context) {
		var req validation.TokenRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		token := cfg.Tokens.Retrieve(c.Request.Context(), req.BCID)
		if token == "" {
			c.JSON(http.StatusOK, gin.H{"ac": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ac": token})
	})

	r.POST("/get_customers", func(c *gin.Context) {
		var req validation.CustomersRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		query, err := contactFields(req.Entry)
		if err != nil {
			cfg.Logger.Error("customer lookup failed", zap.Error(err))
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		active := customers.FilterBlocked(req.Customers)
		found := customers.Match(query.vatNo, query.email, query.phone, query.name, active)

		c.JSON(http.StatusOK, gin.H{
			"customer_mapping": gin.H{"no": found},
			"ac":               req.AccessToken,
			"t_id":             cfg.Config.ERP.TenantID,
			"templates":        catalog.Templates,
			"countries":        catalog.CountryCodes,
		})
	})

	// The only route with a catch-all boundary: any mapping or ERP failure
	// comes back as a 500 carrying the error message.
	r.POST("/newOrders", func(c *gin.Context) {
		var req validation.NewOrderRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		quantity, err := mapping.DeriveQuantity(req.Entry)
		if err != nil {
			failOrder(c, cfg.Logger, err)
			return
		}

		batch := erp.NewBatch(quantity, req.CustomerNo)
		batch, err = mapper.MapItems(c.Request.Context(), req.Entry, batch, req.AccessToken, quantity)
		if err != nil {
			failOrder(c, cfg.Logger, err)
			return
		}

		c.JSON(http.StatusOK, batch)
	})
}

func failOrder(c *gin.Context, log *zap.Logger, err error) {
	log.Error("order mapping failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

type contactQuery struct {
	vatNo, email, phone, name string
}

func contactFields(entry forms.Entry) (contactQuery, error) {
	var q contactQuery
	var err error
	if q.vatNo, err = entry.Field(forms.FieldVATNumber); err != nil {
		return q, err
	}
	if q.email, err = entry.Field(forms.FieldEmail); err != nil {
		return q, err
	}
	if q.phone, err = entry.Field(forms.FieldPhone); err != nil {
		return q, err
	}
	if q.name, err = entry.Field(forms.FieldCompanyName); err != nil {
		return q, err
	}
	return q, nil
}
