package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/harshbadhann2/society-home-connect/internal/backend"
	"github.com/harshbadhann2/society-home-connect/internal/model"
)

func TestBackendFailureStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&backend.Error{Kind: backend.KindNotFound, Err: errors.New("x")}, http.StatusNotFound},
		{&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a' for key 'email'"}, http.StatusConflict},
		{&mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}, http.StatusBadRequest},
		{&mysql.MySQLError{Number: 1146, Message: "Table 'society.wings' doesn't exist"}, http.StatusServiceUnavailable},
		{&mysql.MySQLError{Number: 1142, Message: "SELECT command denied"}, http.StatusServiceUnavailable},
		{errors.New("something odd"), http.StatusInternalServerError},
	}
	e := echo.New()
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		assert.NoError(t, backendFailure(c, tc.err))
		assert.Equal(t, tc.want, rec.Code, tc.err.Error())
		assert.NotContains(t, rec.Body.String(), "Table 'society")
	}
}

func TestParseID(t *testing.T) {
	e := echo.New()
	for raw, ok := range map[string]bool{"7": true, "0": false, "-3": false, "x": false, "": false} {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(raw)
		id, err := parseID(c)
		if ok {
			assert.NoError(t, err)
			assert.Equal(t, int64(7), id)
		} else {
			assert.ErrorIs(t, err, errInvalidID, raw)
		}
	}
}

func TestValidators(t *testing.T) {
	neg := int64(-1)
	assert.Error(t, validatePayment(&model.Payment{Amount: 0}))
	assert.NoError(t, validatePayment(&model.Payment{Amount: 10, Status: "paid"}))
	assert.ErrorContains(t, validateParking(&model.ParkingSpot{SpotNumber: "P-1", ResidentID: &neg}), "resident_id")
	assert.ErrorContains(t, validateStaff(&model.Staff{Name: "A", Position: "Guard", Salary: -1}), "salary")

	c := model.Complaint{Title: " Leak "}
	assert.NoError(t, validateComplaint(&c))
	assert.Equal(t, "open", c.Status)
	assert.Equal(t, "Leak", c.Title)
}
