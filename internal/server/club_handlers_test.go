package server

import (
	"net/http"
	"testing"

	"campusconnect/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClubs_PublicSeesApprovedOnly(t *testing.T) {
	t.Parallel()
	s, _ := newTestServer(t)

	seed := []models.Club{
		{Name: "Chess Club", Status: models.ApprovalStatusApproved},
		{Name: "Film Club", Status: models.ApprovalStatusPending},
		{Name: "Coding Club", Status: models.ApprovalStatusRejected},
	}
	for i := range seed {
		require.NoError(t, s.db.Create(&seed[i]).Error)
	}

	app := fiber.New()
	app.Get("/api/clubs", s.GetClubs)

	resp, err := app.Test(newGetRequest("/api/clubs"))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody(t, resp)

	clubs := out["clubs"].([]any)
	require.Len(t, clubs, 1)
	assert.Equal(t, "Chess Club", clubs[0].(map[string]any)["name"])
}

func TestCreateClub_StartsPending(t *testing.T) {
	t.Parallel()
	s, _ := newTestServer(t)

	student := models.User{Username: "student", Email: "student@campus.edu", Password: "pw"}
	require.NoError(t, s.db.Create(&student).Error)

	app := authedApp(s, student.ID)
	app.Post("/api/clubs", s.CreateClub)

	resp := postJSON(t, app, "/api/clubs", fiber.Map{
		"name":        "Astronomy Club",
		"category":    "science",
		"description": "Telescope nights",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	out := decodeBody(t, resp)
	assert.Equal(t, string(models.ApprovalStatusPending), out["status"])

	var stored models.Club
	require.NoError(t, s.db.First(&stored).Error)
	assert.Equal(t, models.ApprovalStatusPending, stored.Status)
	require.NotNil(t, stored.SubmittedBy)
	assert.Equal(t, student.ID, *stored.SubmittedBy)
}

func TestCreateClub_RejectsOversizedName(t *testing.T) {
	t.Parallel()
	s, _ := newTestServer(t)

	student := models.User{Username: "student", Email: "student@campus.edu", Password: "pw"}
	require.NoError(t, s.db.Create(&student).Error)

	app := authedApp(s, student.ID)
	app.Post("/api/clubs", s.CreateClub)

	name := make([]byte, 201)
	for i := range name {
		name[i] = 'x'
	}
	resp := postJSON(t, app, "/api/clubs", fiber.Map{"name": string(name)})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()

	var count int64
	require.NoError(t, s.db.Model(&models.Club{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLocationAdminCRUD(t *testing.T) {
	t.Parallel()
	s, _ := newTestServer(t)

	admin := models.User{Username: "admin", Email: "admin@campus.edu", Password: "pw", IsAdmin: true}
	require.NoError(t, s.db.Create(&admin).Error)

	app := authedApp(s, admin.ID)
	app.Post("/api/admin/locations", s.CreateLocation)
	app.Get("/api/locations", s.GetLocations)

	resp := postJSON(t, app, "/api/admin/locations", fiber.Map{
		"name":      "Main Gate",
		"category":  "landmark",
		"latitude":  12.9698,
		"longitude": 77.5940,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = decodeBody(t, resp)

	// Out-of-range latitude is rejected.
	resp = postJSON(t, app, "/api/admin/locations", fiber.Map{
		"name":      "Nowhere",
		"latitude":  123.0,
		"longitude": 0.0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()

	listResp, err := app.Test(newGetRequest("/api/locations"))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	out := decodeBody(t, listResp)
	locations := out["locations"].([]any)
	require.Len(t, locations, 1)
	assert.Equal(t, "Main Gate", locations[0].(map[string]any)["name"])
}
