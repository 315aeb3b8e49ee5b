package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"recruitdash/models"
	"recruitdash/services"
)

func backendStub(t *testing.T, capture *map[string]interface{}) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			json.NewDecoder(r.Body).Decode(capture)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"status": 1})
	}))
}

func jobRouter(backendURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	jc := NewJobController(services.NewGatewayService(backendURL), nil, "https://app.example")

	router := gin.New()
	router.POST("/api/jobs", jc.SubmitJob)
	router.POST("/api/jobs/sections", jc.AddSection)
	router.POST("/api/jobs/sections/remove", jc.RemoveSection)
	router.POST("/api/jobs/draft/skills", jc.UpdateSkills)
	router.GET("/api/jobs/draft", jc.NewDraft)
	router.POST("/api/jobs/:preInterviewId/publish", jc.Publish)
	return router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitJobValidationAlert(t *testing.T) {
	var got map[string]interface{}
	server := backendStub(t, &got)
	defer server.Close()
	router := jobRouter(server.URL)

	// empty draft fails the first validator
	w := postJSON(router, "/api/jobs", models.NewJobDraft())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Please select a company")
	// a failed validation never reaches the backend
	assert.Empty(t, got)
}

func TestSubmitJobForwardsPayload(t *testing.T) {
	var got map[string]interface{}
	server := backendStub(t, &got)
	defer server.Close()
	router := jobRouter(server.URL)

	d := models.NewJobDraft()
	d.CompanyIDList = []string{"10"}
	d.ServiceType = models.ServiceTypeRAS
	d.DomainRoleID = "2"
	d.CompetencySubjectIDs = []string{"12"}
	d.JobName = "Backend Engineer"
	d.RecruiterEmail = "recruiter@acme.example"
	d.JobStartDate = "2999-07-01"
	d.JobExpireDate = "2999-08-01"
	d.Headcount = "5"
	d.EmploymentType = "Full Time"
	d.BondAgreementRequired = "N"
	d.SetRequiredSkills([]string{"1"})
	d.SetUltraMandatorySkills([]string{"1"})
	d.ExpMin = "2"
	d.ExpMax = "5"
	d.JobLocationIDs = []string{"7"}
	d.WorkingDays = "5"
	d.JobMode = []string{"WFO"}
	d.JobShift = []string{"Day"}
	d.NoticePeriod = "30"
	d.JobDescriptionHTML = "<p>Build services</p>"
	d.SetPromotion(models.PromoSocial, true)

	w := postJSON(router, "/api/jobs", d)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Backend Engineer", got["interviewName"])
	assert.Equal(t, "S", got["promoteValue"])
	assert.Equal(t, "Y", got["pendingInterviews"])
}

func TestAddSectionEndpoint(t *testing.T) {
	server := backendStub(t, nil)
	defer server.Close()
	router := jobRouter(server.URL)

	w := postJSON(router, "/api/jobs/sections", SectionRequest{Draft: *models.NewJobDraft()})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"section":"3"`)

	// incomplete first section blocks the next add with the gate message
	draft := models.NewJobDraft()
	draft.InterviewSections = []models.InterviewSection{{Section: "3"}}
	w = postJSON(router, "/api/jobs/sections", SectionRequest{Draft: *draft})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Pls Select Min One Subject")
}

func TestRemoveSectionEndpoint(t *testing.T) {
	server := backendStub(t, nil)
	defer server.Close()
	router := jobRouter(server.URL)

	draft := models.NewJobDraft()
	draft.InterviewSections = []models.InterviewSection{
		{Section: "3"}, {Section: "4"},
	}
	w := postJSON(router, "/api/jobs/sections/remove", SectionRequest{Draft: *draft, Index: 0})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"section":"3"`)
	assert.Contains(t, w.Body.String(), `"section":"4"`)
}

func TestUpdateSkillsEndpoint(t *testing.T) {
	server := backendStub(t, nil)
	defer server.Close()
	router := jobRouter(server.URL)

	draft := models.NewJobDraft()
	draft.RequiredSkills = []string{"1", "2"}
	draft.UltraMandatorySkills = []string{"1", "2"}
	draft.GoodToHaveSkills = []string{"3"}

	w := postJSON(router, "/api/jobs/draft/skills", UpdateSkillsRequest{
		Draft:  *draft,
		Field:  "required",
		Values: []string{"1", "3"},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.JobDraft `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"1", "3"}, resp.Data.RequiredSkills)
	assert.Equal(t, []string{"1"}, resp.Data.UltraMandatorySkills)
	assert.Empty(t, resp.Data.GoodToHaveSkills)

	w = postJSON(router, "/api/jobs/draft/skills", UpdateSkillsRequest{
		Draft: *draft,
		Field: "unknown",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublishCreateLinkReturnsJobLink(t *testing.T) {
	server := backendStub(t, nil)
	defer server.Close()
	router := jobRouter(server.URL)

	w := postJSON(router, "/api/jobs/42/publish", PublishRequest{Val: 2})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://app.example/job?p=42")

	w = postJSON(router, "/api/jobs/42/publish", PublishRequest{Val: 1})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "job?p=42")
}

func TestNewDraftEndpoint(t *testing.T) {
	server := backendStub(t, nil)
	defer server.Close()
	router := jobRouter(server.URL)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/jobs/draft", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mode":"create"`)
	assert.Contains(t, w.Body.String(), `"outstation":"Y"`)
}
