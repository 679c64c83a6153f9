package controller

import "github.com/labstack/echo/v4"

type RotationController interface {
	Generate(c echo.Context) error
	List(c echo.Context) error
}
