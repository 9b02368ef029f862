package phlyty_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/advdv/phlyty"
	"github.com/cockroachdb/errors"
)

func Example() {
	hdlr := phlyty.Serve(phlyty.HandlerFunc(func(app *phlyty.App) error {
		if app.Request().Header.Get("Authorization") == "" {
			return app.Halt(http.StatusUnauthorized, "login first")
		}

		app.Response().Header().Set("Content-Type", "text/plain")
		app.Response().SetContent("welcome")
		return nil
	}))

	rec := httptest.NewRecorder()
	hdlr.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	fmt.Println("No token:", rec.Code, rec.Body.String())

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer secret")
	hdlr.ServeHTTP(rec, req)
	fmt.Println("Token:", rec.Code, rec.Body.String())
	// Output:
	// No token: 401 login first
	// Token: 200 welcome
}

func ExampleApp_Redirect() {
	hdlr := phlyty.Serve(phlyty.HandlerFunc(func(app *phlyty.App) error {
		if app.Request().URL.Path == "/old" {
			return app.Redirect("/new", http.StatusMovedPermanently)
		}

		return app.Redirect("http://github.com")
	}))

	rec := httptest.NewRecorder()
	hdlr.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/old", nil))
	fmt.Println(rec.Code, rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	hdlr.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/other", nil))
	fmt.Println(rec.Code, rec.Header().Get("Location"))
	// Output:
	// 301 /new
	// 302 http://github.com
}

func ExampleApp_Stop() {
	hdlr := phlyty.Serve(phlyty.HandlerFunc(func(app *phlyty.App) error {
		app.Response().SetStatusCode(http.StatusAccepted).SetContent("queued")
		if err := app.Stop(); err != nil {
			return err
		}

		app.Response().SetContent("never reached")
		return nil
	}))

	rec := httptest.NewRecorder()
	hdlr.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/jobs", nil))
	fmt.Println(rec.Code, rec.Body.String())
	// Output:
	// 202 queued
}

func ExampleApp_Halt() {
	app := phlyty.New()
	fmt.Fprint(app.Response(), "partial output")

	err := app.Halt(http.StatusServiceUnavailable, "try again later")
	fmt.Println(phlyty.IsHalt(err))
	fmt.Println(app.Response().StatusCode(), app.Response().Content())
	// Output:
	// true
	// 503 try again later
}

func ExampleNewError() {
	hdlr := phlyty.Serve(phlyty.HandlerFunc(func(app *phlyty.App) error {
		fmt.Fprint(app.Response(), "this is discarded")
		return phlyty.NewError(http.StatusNotFound, errors.New("no such item"))
	}))

	rec := httptest.NewRecorder()
	hdlr.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/42", nil))
	fmt.Print(rec.Code, " ", rec.Body.String())
	// Output:
	// 404 Not Found
}
