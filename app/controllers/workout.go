package controllers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/km-arc/diaita/app/dto"
	"github.com/km-arc/diaita/app/services"
	"github.com/km-arc/diaita/framework/app"
)

type WorkoutController struct {
	app.Controller
	Workouts *services.WorkoutService `inject:""`
	Log      *zap.Logger              `inject:""`
}

// Search handles POST /workouts/search.
func (c *WorkoutController) Search(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)

	body := dto.NewWorkoutSearchRequest()
	errs, err := req.BindAndValidate(body)
	if err != nil {
		res.BadRequest(msgInvalidPayload)
		return
	}
	if errs.Has() {
		res.ValidationError(errs)
		return
	}

	out, err := c.Workouts.SearchWorkouts(r.Context(), *body)
	if err != nil {
		c.Log.Error("search workouts", zap.String("request_id", req.RequestID()), zap.Error(err))
		fail(res, err, "Not found", "Failed to search workouts")
		return
	}
	res.OK(out)
}
