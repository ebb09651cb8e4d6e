package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"onlynerds/config"
	"onlynerds/database"
	"onlynerds/middleware"
	"onlynerds/models"
	courseRoutes "onlynerds/routers/courseRoutes"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	walletA = "0x" + "11111111111111111111111111111111111111aa"
	walletB = "0x" + "22222222222222222222222222222222222222bb"
	walletC = "0x" + "33333333333333333333333333333333333333cc"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.LoadConfig()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	return app, db
}

func authToken(t *testing.T, wallet string) string {
	t.Helper()
	token, err := middleware.GenerateJWT(wallet)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

func seedCourse(t *testing.T, db *gorm.DB, creator, name string, public bool, categories []string, score int) models.Course {
	t.Helper()
	course := models.Course{
		ID:         uuid.NewString(),
		Name:       name,
		CreatorID:  creator,
		IsPublic:   public,
		Categories: categories,
		Difficulty: "Beginner",
		IsOriginal: true,
	}
	require.NoError(t, db.Create(&course).Error)

	ranking := models.CourseRanking{
		ID:        uuid.NewString(),
		CourseID:  course.ID,
		CreatorID: creator,
		Score:     score,
	}
	if score > 0 {
		ranking.Upvotes = score
	}
	require.NoError(t, db.Create(&ranking).Error)
	return course
}

func TestCreateCourse(t *testing.T) {
	app, db := setupApp(t)
	token := authToken(t, walletA)

	status, body := doRequest(t, app, http.MethodPost, "/course/", token, fiber.Map{
		"name":        "Intro to Solidity",
		"description": "Smart contracts from zero",
		"categories":  []string{"Web3"},
		"difficulty":  "Beginner",
	})
	require.Equal(t, http.StatusOK, status, body["message"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Intro to Solidity", data["name"])
	assert.Equal(t, walletA, data["creator_id"])
	assert.Equal(t, true, data["is_public"])
	assert.Equal(t, true, data["is_original"])

	ranking := data["ranking"].(map[string]interface{})
	assert.Equal(t, float64(0), ranking["upvotes"])
	assert.Equal(t, float64(0), ranking["score"])

	var count int64
	db.Model(&models.CourseRanking{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateCourseValidation(t *testing.T) {
	app, _ := setupApp(t)
	token := authToken(t, walletA)

	tests := []struct {
		name string
		body fiber.Map
	}{
		{"missing name", fiber.Map{"categories": []string{"Web3"}, "difficulty": "Beginner"}},
		{"unknown category", fiber.Map{"name": "Valid Name", "categories": []string{"Cooking"}, "difficulty": "Beginner"}},
		{"no categories", fiber.Map{"name": "Valid Name", "categories": []string{}, "difficulty": "Beginner"}},
		{"bad difficulty", fiber.Map{"name": "Valid Name", "categories": []string{"Web3"}, "difficulty": "Impossible"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := doRequest(t, app, http.MethodPost, "/course/", token, tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, status)
		})
	}
}

func TestCreateCourseRequiresAuth(t *testing.T) {
	app, _ := setupApp(t)

	status, _ := doRequest(t, app, http.MethodPost, "/course/", "", fiber.Map{
		"name": "No Auth", "categories": []string{"Web3"}, "difficulty": "Beginner",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestUpdateCourseOwnership(t *testing.T) {
	app, db := setupApp(t)
	course := seedCourse(t, db, walletA, "Original Name", true, []string{"Web3"}, 0)

	status, _ := doRequest(t, app, http.MethodPut, "/course/"+course.ID, authToken(t, walletB), fiber.Map{
		"name": "Hijacked",
	})
	assert.Equal(t, http.StatusForbidden, status)

	status, body := doRequest(t, app, http.MethodPut, "/course/"+course.ID, authToken(t, walletA), fiber.Map{
		"name":      "Renamed",
		"is_public": false,
	})
	require.Equal(t, http.StatusOK, status, body["message"])

	var updated models.Course
	require.NoError(t, db.First(&updated, "id = ?", course.ID).Error)
	assert.Equal(t, "Renamed", updated.Name)
	assert.False(t, updated.IsPublic)
	// untouched fields survive a partial update
	assert.Equal(t, "Beginner", updated.Difficulty)
}

func TestGetCourseList(t *testing.T) {
	app, db := setupApp(t)

	seedCourse(t, db, walletA, "Web3 One", true, []string{"Web3"}, 0)
	seedCourse(t, db, walletA, "Web3 Two", true, []string{"Web3"}, 0)
	seedCourse(t, db, walletB, "Web3 Three", true, []string{"Web3", "Marketing"}, 0)
	seedCourse(t, db, walletB, "ML Course", true, []string{"AI/ML"}, 0)
	seedCourse(t, db, walletB, "Hidden", false, []string{"Web3"}, 0)

	status, body := doRequest(t, app, http.MethodGet, "/course/list?category=Web3", "", nil)
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]interface{})
	pagination := data["pagination"].(map[string]interface{})
	assert.Equal(t, float64(3), pagination["total"], "private courses and other categories excluded")

	status, body = doRequest(t, app, http.MethodGet, "/course/list?category=Web3&limit=2&page=2", "", nil)
	require.Equal(t, http.StatusOK, status)

	data = body["data"].(map[string]interface{})
	pagination = data["pagination"].(map[string]interface{})
	assert.Equal(t, float64(2), pagination["totalPages"])
	assert.Equal(t, float64(2), pagination["page"])
	assert.Len(t, data["courses"].([]interface{}), 1)
}

func TestGetCourseListSortByScore(t *testing.T) {
	app, db := setupApp(t)

	seedCourse(t, db, walletA, "Low", true, []string{"Web3"}, 1)
	seedCourse(t, db, walletA, "High", true, []string{"Web3"}, 5)
	seedCourse(t, db, walletA, "Mid", true, []string{"Web3"}, 3)

	status, body := doRequest(t, app, http.MethodGet, "/course/list?sortBy=score", "", nil)
	require.Equal(t, http.StatusOK, status)

	courses := body["data"].(map[string]interface{})["courses"].([]interface{})
	require.Len(t, courses, 3)
	names := make([]string, len(courses))
	for i, raw := range courses {
		names[i] = raw.(map[string]interface{})["name"].(string)
	}
	assert.Equal(t, []string{"High", "Mid", "Low"}, names)
}

func TestGetCourseListScoreSortPutsUnrankedLast(t *testing.T) {
	app, db := setupApp(t)

	seedCourse(t, db, walletA, "Ranked", true, []string{"Web3"}, 2)

	// a course whose ranking row is missing must not float to the top
	unranked := models.Course{
		ID:         uuid.NewString(),
		Name:       "Unranked",
		CreatorID:  walletA,
		IsPublic:   true,
		Categories: []string{"Web3"},
		Difficulty: "Beginner",
		IsOriginal: true,
	}
	require.NoError(t, db.Create(&unranked).Error)

	status, body := doRequest(t, app, http.MethodGet, "/course/list?sortBy=score", "", nil)
	require.Equal(t, http.StatusOK, status)

	courses := body["data"].(map[string]interface{})["courses"].([]interface{})
	require.Len(t, courses, 2)
	assert.Equal(t, "Ranked", courses[0].(map[string]interface{})["name"])
	assert.Equal(t, "Unranked", courses[1].(map[string]interface{})["name"])
}

func TestGetCourseListRejectsBadParams(t *testing.T) {
	app, _ := setupApp(t)

	for _, path := range []string{
		"/course/list?page=0",
		"/course/list?limit=500",
		"/course/list?category=Cooking",
		"/course/list?sortBy=alphabet",
	} {
		status, _ := doRequest(t, app, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, status, path)
	}
}

func TestGetTopRatedCourses(t *testing.T) {
	app, db := setupApp(t)

	seedCourse(t, db, walletA, "Third", true, []string{"Web3"}, 1)
	seedCourse(t, db, walletA, "First", true, []string{"Web3"}, 9)
	seedCourse(t, db, walletA, "Second", true, []string{"Web3"}, 4)
	seedCourse(t, db, walletB, "Private Winner", false, []string{"Web3"}, 99)

	status, body := doRequest(t, app, http.MethodGet, "/course/top?limit=2", "", nil)
	require.Equal(t, http.StatusOK, status)

	courses := body["data"].(map[string]interface{})["courses"].([]interface{})
	require.Len(t, courses, 2)
	assert.Equal(t, "First", courses[0].(map[string]interface{})["name"])
	assert.Equal(t, "Second", courses[1].(map[string]interface{})["name"])
}

func TestGetCoursesByCreator(t *testing.T) {
	app, db := setupApp(t)

	seedCourse(t, db, walletA, "Mine", true, []string{"Web3"}, 0)
	seedCourse(t, db, walletA, "Mine Too", false, []string{"Web3"}, 0)
	seedCourse(t, db, walletB, "Theirs", true, []string{"Web3"}, 0)

	status, body := doRequest(t, app, http.MethodGet, "/course/creator/"+walletA, "", nil)
	require.Equal(t, http.StatusOK, status)

	courses := body["data"].(map[string]interface{})["courses"].([]interface{})
	assert.Len(t, courses, 2)
}

func TestDeleteCourseCascades(t *testing.T) {
	app, db := setupApp(t)
	course := seedCourse(t, db, walletA, "Doomed", true, []string{"Web3"}, 0)

	module := models.Module{ID: uuid.NewString(), CourseID: course.ID, Name: "M1"}
	require.NoError(t, db.Create(&module).Error)
	require.NoError(t, db.Create(&models.Assessment{
		ID: uuid.NewString(), ModuleID: module.ID, CourseID: course.ID, Type: "mcq",
	}).Error)
	require.NoError(t, db.Create(&models.CourseVote{
		CourseID: course.ID, VoterID: walletB, Direction: "up",
	}).Error)

	status, _ := doRequest(t, app, http.MethodDelete, "/course/"+course.ID, authToken(t, walletB), nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = doRequest(t, app, http.MethodDelete, "/course/"+course.ID, authToken(t, walletA), nil)
	require.Equal(t, http.StatusOK, status)

	for _, model := range []interface{}{
		&models.Course{}, &models.CourseRanking{}, &models.CourseVote{},
		&models.Module{}, &models.Assessment{},
	} {
		var count int64
		db.Model(model).Count(&count)
		assert.Equal(t, int64(0), count)
	}
}
