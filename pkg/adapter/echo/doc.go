// Package echoadapter connects client version detection to labstack/echo.
//
//	e := echo.New()
//	e.Use(echoadapter.Middleware())
//
//	gate, err := echoadapter.RequireVersion(clientversion.PlatformIOS, ">= 2.0.0")
//	if err != nil {
//	    return err
//	}
//	e.GET("/v1/checkout", handleCheckout, gate)
//
// Handlers read the client with echoadapter.Current(c), or with
// clientversion.CurrentFromContext(c.Request().Context()).
package echoadapter
