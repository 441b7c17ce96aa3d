package controllers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/km-arc/diaita/app/dto"
	"github.com/km-arc/diaita/app/services"
	"github.com/km-arc/diaita/framework/app"
)

type UserController struct {
	app.Controller
	Users *services.UserService `inject:""`
	Log   *zap.Logger           `inject:""`
}

// Register handles POST /register and POST /user/profile.
func (c *UserController) Register(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)

	var body dto.RegisterUserProfileRequest
	if err := req.Bind(&body); err != nil || strings.TrimSpace(body.UserID) == "" {
		res.BadRequest("Invalid request, request body is invalid")
		return
	}
	if errs := req.Validate(&body); errs.Has() {
		res.ValidationError(errs)
		return
	}

	if err := c.Users.RegisterUserProfile(r.Context(), body); err != nil {
		c.Log.Error("register user", zap.String("request_id", req.RequestID()), zap.Error(err))
		fail(res, err, "Not found", "Server Error occurred")
		return
	}
	res.Status(http.StatusOK, "ok")
}

// SectionRoutes are the GET, PUT and DELETE handlers of one profile section,
// served under /user/settings/{Slug}/{userId}.
type SectionRoutes struct {
	Slug   string
	Get    http.HandlerFunc
	Put    http.HandlerFunc
	Delete http.HandlerFunc
}

// Sections lists the handlers for every profile section.
func (c *UserController) Sections() []SectionRoutes {
	return []SectionRoutes{
		sectionRoutes(c, services.BasicDemographicsSection),
		sectionRoutes(c, services.ActivityLifestyleSection),
		sectionRoutes(c, services.GoalsPrioritiesSection),
		sectionRoutes(c, services.TrainingBackgroundSection),
		sectionRoutes(c, services.MedicalHistorySection),
		sectionRoutes(c, services.NutritionHistorySection),
		sectionRoutes(c, services.BehavioralFactorsSection),
		sectionRoutes(c, services.MetricsTrackingSection),
	}
}

func sectionRoutes[D, R any](c *UserController, sec services.Section[D, R]) SectionRoutes {
	userID := func(r *http.Request) (string, bool) {
		id := strings.TrimSpace(c.Request(r).RouteParam("userId"))
		return id, id != ""
	}

	return SectionRoutes{
		Slug: sec.Slug,
		Get: func(w http.ResponseWriter, r *http.Request) {
			res := c.Response(w)
			id, ok := userID(r)
			if !ok {
				res.BadRequest("Missing userId")
				return
			}
			out, err := services.GetSection(c.Users, sec, id)
			if err != nil {
				fail(res, err, "Not found", "Failed to load "+sec.Slug)
				return
			}
			res.OK(out)
		},
		Put: func(w http.ResponseWriter, r *http.Request) {
			req, res := c.Request(r), c.Response(w)
			id, ok := userID(r)
			if !ok {
				res.BadRequest("Missing userId")
				return
			}
			var body D
			errs, err := req.BindAndValidate(&body)
			if err != nil {
				res.BadRequest(msgInvalidPayload)
				return
			}
			if errs.Has() {
				res.ValidationError(errs)
				return
			}
			out, err := services.UpdateSection(c.Users, sec, id, body)
			if err != nil {
				c.Log.Error("update section", zap.String("section", sec.Slug), zap.Error(err))
				fail(res, err, "Not found", "Update failed")
				return
			}
			res.OK(out)
		},
		Delete: func(w http.ResponseWriter, r *http.Request) {
			res := c.Response(w)
			id, ok := userID(r)
			if !ok {
				res.BadRequest("Missing userId")
				return
			}
			if err := services.DeleteSection(c.Users, sec, id); err != nil {
				c.Log.Error("delete section", zap.String("section", sec.Slug), zap.Error(err))
				fail(res, err, "Not found", "Delete failed")
				return
			}
			res.Status(http.StatusOK, "deleted")
		},
	}
}
