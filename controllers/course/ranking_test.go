package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"onlynerds/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// voteConcurrently fires one vote request per token in parallel and returns
// the status codes. Requests are built inline so no test assertion runs off
// the test goroutine.
func voteConcurrently(t *testing.T, app *fiber.App, courseID string, tokens []string) []int {
	t.Helper()

	payload, err := json.Marshal(fiber.Map{"direction": "up"})
	require.NoError(t, err)

	statuses := make([]int, len(tokens))
	var wg sync.WaitGroup
	for i, token := range tokens {
		wg.Add(1)
		go func(i int, token string) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/course/"+courseID+"/vote", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+token)
			resp, err := app.Test(req, -1)
			if err != nil {
				return
			}
			resp.Body.Close()
			statuses[i] = resp.StatusCode
		}(i, token)
	}
	wg.Wait()
	return statuses
}

func TestVoteCourse(t *testing.T) {
	app, db := setupApp(t)
	course := seedCourse(t, db, walletA, "Voted Course", true, []string{"Web3"}, 0)

	vote := func(wallet, direction string) (int, map[string]interface{}) {
		return doRequest(t, app, http.MethodPost, "/course/"+course.ID+"/vote",
			authToken(t, wallet), fiber.Map{"direction": direction})
	}

	status, body := vote(walletB, "up")
	require.Equal(t, http.StatusOK, status, body["message"])

	status, _ = vote(walletC, "up")
	require.Equal(t, http.StatusOK, status)

	var ranking models.CourseRanking
	require.NoError(t, db.Where("course_id = ?", course.ID).First(&ranking).Error)
	assert.Equal(t, 2, ranking.Upvotes)
	assert.Equal(t, 0, ranking.Downvotes)
	assert.Equal(t, 2, ranking.Score)

	status, _ = vote(walletA, "down")
	require.Equal(t, http.StatusOK, status)

	require.NoError(t, db.Where("course_id = ?", course.ID).First(&ranking).Error)
	assert.Equal(t, 2, ranking.Upvotes)
	assert.Equal(t, 1, ranking.Downvotes)
	assert.Equal(t, 1, ranking.Score, "score stays upvotes - downvotes")
}

func TestVoteCourseOncePerWallet(t *testing.T) {
	app, db := setupApp(t)
	course := seedCourse(t, db, walletA, "One Vote Each", true, []string{"Web3"}, 0)

	status, _ := doRequest(t, app, http.MethodPost, "/course/"+course.ID+"/vote",
		authToken(t, walletB), fiber.Map{"direction": "up"})
	require.Equal(t, http.StatusOK, status)

	// same wallet again, even flipping direction
	status, _ = doRequest(t, app, http.MethodPost, "/course/"+course.ID+"/vote",
		authToken(t, walletB), fiber.Map{"direction": "down"})
	assert.Equal(t, http.StatusConflict, status)

	var ranking models.CourseRanking
	require.NoError(t, db.Where("course_id = ?", course.ID).First(&ranking).Error)
	assert.Equal(t, 1, ranking.Upvotes)
	assert.Equal(t, 0, ranking.Downvotes)
	assert.Equal(t, 1, ranking.Score)

	var votes int64
	db.Model(&models.CourseVote{}).Where("course_id = ?", course.ID).Count(&votes)
	assert.Equal(t, int64(1), votes)
}

func TestConcurrentVotesAllCounted(t *testing.T) {
	app, db := setupApp(t)
	course := seedCourse(t, db, walletA, "Hot Course", true, []string{"Web3"}, 0)

	const voters = 16
	tokens := make([]string, voters)
	for i := range tokens {
		tokens[i] = authToken(t, fmt.Sprintf("0x%040x", i+1))
	}

	statuses := voteConcurrently(t, app, course.ID, tokens)

	successes := 0
	for _, status := range statuses {
		if status == http.StatusOK {
			successes++
		}
	}
	require.Equal(t, voters, successes, "every vote from a distinct wallet is acknowledged")

	// no acknowledged vote may be lost, and score stays consistent
	var ranking models.CourseRanking
	require.NoError(t, db.Where("course_id = ?", course.ID).First(&ranking).Error)
	assert.Equal(t, voters, ranking.Upvotes)
	assert.Equal(t, 0, ranking.Downvotes)
	assert.Equal(t, ranking.Upvotes-ranking.Downvotes, ranking.Score)

	var votes int64
	db.Model(&models.CourseVote{}).Where("course_id = ?", course.ID).Count(&votes)
	assert.Equal(t, int64(voters), votes)
}

func TestConcurrentDuplicateVotesCountOnce(t *testing.T) {
	app, db := setupApp(t)
	course := seedCourse(t, db, walletA, "Race Target", true, []string{"Web3"}, 0)

	const attempts = 8
	tokens := make([]string, attempts)
	token := authToken(t, walletB)
	for i := range tokens {
		tokens[i] = token
	}

	statuses := voteConcurrently(t, app, course.ID, tokens)

	okCount, conflictCount := 0, 0
	for _, status := range statuses {
		switch status {
		case http.StatusOK:
			okCount++
		case http.StatusConflict:
			conflictCount++
		}
	}
	assert.Equal(t, 1, okCount, "exactly one vote wins")
	assert.Equal(t, attempts-1, conflictCount, "losers get 409, never 500")

	var ranking models.CourseRanking
	require.NoError(t, db.Where("course_id = ?", course.ID).First(&ranking).Error)
	assert.Equal(t, 1, ranking.Upvotes)
	assert.Equal(t, 1, ranking.Score)

	var votes int64
	db.Model(&models.CourseVote{}).Where("course_id = ?", course.ID).Count(&votes)
	assert.Equal(t, int64(1), votes)
}

func TestVoteCourseValidation(t *testing.T) {
	app, db := setupApp(t)
	course := seedCourse(t, db, walletA, "Validated", true, []string{"Web3"}, 0)

	status, _ := doRequest(t, app, http.MethodPost, "/course/"+course.ID+"/vote",
		authToken(t, walletB), fiber.Map{"direction": "sideways"})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestVoteCourseMissingRanking(t *testing.T) {
	app, _ := setupApp(t)

	status, _ := doRequest(t, app, http.MethodPost, "/course/nope/vote",
		authToken(t, walletB), fiber.Map{"direction": "up"})
	assert.Equal(t, http.StatusNotFound, status)
}
