package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"recruitdash/models"
)

// BackendEnvelope is the response wrapper every PHP backend operation uses.
type BackendEnvelope struct {
	Status    int             `json:"status"`
	Data      json.RawMessage `json:"data,omitempty"`
	ErrorCode string          `json:"errorCode,omitempty"`
}

// GatewayService is the JSON-over-HTTP client for the remote backend. Each
// operation posts to index.php?<op>. Requests are keyed by user and intent:
// starting a new request for the same user's intent cancels the stale
// in-flight one, so a rapid interview-selection change can never be answered
// by the older response. Different users never cancel each other.
type GatewayService struct {
	baseURL string
	client  *http.Client

	mu       sync.Mutex
	inflight map[string]*inflightCall
}

type inflightCall struct {
	cancel context.CancelFunc
}

// Identity is the acting dashboard user, forwarded on every backend call.
type Identity struct {
	UserID   string `json:"userId"`
	UserType string `json:"userType"`
}

func NewGatewayService(baseURL string) *GatewayService {
	return &GatewayService{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{},
		inflight: map[string]*inflightCall{},
	}
}

// intentKey scopes a cancellation slot to one user so concurrent users never
// supersede each other's calls for the same operation.
func intentKey(userID, intent string) string {
	return userID + ":" + intent
}

// post sends one backend operation and decodes the envelope. The key names
// the cancellation slot; callers build it with intentKey.
func (g *GatewayService) post(ctx context.Context, key, op string, body interface{}, out interface{}) error {
	ctx, cancel := context.WithCancel(ctx)
	call := &inflightCall{cancel: cancel}

	g.mu.Lock()
	if prev, ok := g.inflight[key]; ok {
		prev.cancel()
	}
	g.inflight[key] = call
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		if g.inflight[key] == call {
			delete(g.inflight, key)
		}
		g.mu.Unlock()
		cancel()
	}()

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("error encoding %s request: %v", op, err)
	}

	url := fmt.Sprintf("%s/index.php?%s", g.baseURL, op)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("error building %s request: %v", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("error calling %s: %v", op, err)
	}
	defer resp.Body.Close()

	var envelope BackendEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("error decoding %s response: %v", op, err)
	}
	if envelope.Status != 1 {
		if envelope.ErrorCode != "" {
			return fmt.Errorf("%s failed: %s", op, envelope.ErrorCode)
		}
		return fmt.Errorf("%s failed with status %d", op, envelope.Status)
	}
	if out != nil && envelope.Data != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("error decoding %s data: %v", op, err)
		}
	}
	return nil
}

// FetchCreationFilters loads every master list the job form needs.
func (g *GatewayService) FetchCreationFilters(ctx context.Context, user Identity) (*models.CreationFilters, error) {
	var filters models.CreationFilters
	err := g.post(ctx, intentKey(user.UserID, "filters"), "getinterviewCreationFilters", user, &filters)
	if err != nil {
		return nil, err
	}
	return &filters, nil
}

// AttemptDetailsData is the getAttempdetails payload: current job-form values,
// the candidate attempt count and the preference key/value list.
type AttemptDetailsData struct {
	JobForm          []map[string]interface{} `json:"jobForm"`
	AttemptedDetails int                      `json:"attemptedDetails"`
	Preference       []models.Preference      `json:"preference"`
	Skills           []models.Skill           `json:"skills"`
	Locations        []models.Location        `json:"locations"`
}

type preInterviewRequest struct {
	UserID         string   `json:"userId"`
	UserType       string   `json:"userType"`
	PreInterviewID []string `json:"preInterviewId"`
}

// FetchAttemptDetails loads the first hydration call for modify mode. A newer
// call for a different interview cancels this one.
func (g *GatewayService) FetchAttemptDetails(ctx context.Context, user Identity, preInterviewIDs []string) (*AttemptDetailsData, error) {
	var data AttemptDetailsData
	err := g.post(ctx, intentKey(user.UserID, "attempt-details"), "getAttempdetails",
		preInterviewRequest{UserID: user.UserID, UserType: user.UserType, PreInterviewID: preInterviewIDs}, &data)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// FetchEditDetails loads the second hydration call; its values win where both
// calls populate the same field.
func (g *GatewayService) FetchEditDetails(ctx context.Context, user Identity, preInterviewIDs []string) (map[string]interface{}, error) {
	data := map[string]interface{}{}
	err := g.post(ctx, intentKey(user.UserID, "edit-details"), "editInterviewDetails",
		preInterviewRequest{UserID: user.UserID, UserType: user.UserType, PreInterviewID: preInterviewIDs}, &data)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// AddSkill adds a custom skill to the master catalog.
func (g *GatewayService) AddSkill(ctx context.Context, user Identity, name string) error {
	body := map[string]string{
		"userId":            user.UserID,
		"userType":          user.UserType,
		"favourite_subject": strings.TrimSpace(name),
	}
	return g.post(ctx, intentKey(user.UserID, "add-skill"), "addSkillMaster", body, nil)
}

type topicListData struct {
	TopicList []models.Topic `json:"topicList"`
}

// FetchTopics loads topics for the comma-joined subject ids, grouped by
// subject for lookup.
func (g *GatewayService) FetchTopics(ctx context.Context, user Identity, subjectIDs []string) (map[string][]models.Topic, error) {
	var data topicListData
	body := map[string]string{
		"userId":    user.UserID,
		"userType":  user.UserType,
		"subjectId": strings.Join(subjectIDs, ","),
	}
	if err := g.post(ctx, intentKey(user.UserID, "topics"), "getInterviewTopics", body, &data); err != nil {
		return nil, err
	}
	grouped := map[string][]models.Topic{}
	for _, topic := range data.TopicList {
		grouped[topic.SubjectID] = append(grouped[topic.SubjectID], topic)
	}
	return grouped, nil
}

// CreateInterview submits the assembled payload; the backend decides between
// insert and update from preInterviewId.
func (g *GatewayService) CreateInterview(ctx context.Context, payload *models.InterviewPayload) error {
	return g.post(ctx, intentKey(payload.UserID, "create-interview"), "createAdaptiveInterview_Goprac", payload, nil)
}

// Publish publishes an interview. val=1 publishes, val=2 is the create-link
// variant.
func (g *GatewayService) Publish(ctx context.Context, user Identity, preInterviewID string, val int) error {
	body := map[string]interface{}{
		"userId":         user.UserID,
		"userType":       user.UserType,
		"preInterviewId": []string{preInterviewID},
		"val":            val,
	}
	return g.post(ctx, intentKey(user.UserID, "publish"), "publish", body, nil)
}

// DeletePreInterview removes an interview.
func (g *GatewayService) DeletePreInterview(ctx context.Context, user Identity, preInterviewID string) error {
	body := map[string]string{
		"userId":         user.UserID,
		"userType":       user.UserType,
		"preInterviewId": preInterviewID,
	}
	return g.post(ctx, intentKey(user.UserID, "delete"), "deletePreInterview", body, nil)
}

// AssociatedCorporateData is the corporate-association lookup result.
type AssociatedCorporateData struct {
	CorporateList       []models.Corporate `json:"corporateList"`
	AssociatedCorporate []models.Corporate `json:"associatedCorporate"`
}

// FetchAssociatedCorporate loads the corporate list and current associations
// for an interview.
func (g *GatewayService) FetchAssociatedCorporate(ctx context.Context, user Identity, preInterviewID string) (*AssociatedCorporateData, error) {
	var data AssociatedCorporateData
	body := map[string]string{
		"userId":         user.UserID,
		"userType":       user.UserType,
		"preInterviewId": preInterviewID,
	}
	if err := g.post(ctx, intentKey(user.UserID, "associated-corporate"), "getAssociatedCorporate", body, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// AssociateCorporate links the selected corporate users to an interview.
func (g *GatewayService) AssociateCorporate(ctx context.Context, user Identity, preInterviewID string, corporateUserIDs []string) error {
	body := map[string]interface{}{
		"userId":          user.UserID,
		"userType":        user.UserType,
		"preInterviewId":  preInterviewID,
		"corporateUserId": corporateUserIDs,
	}
	return g.post(ctx, intentKey(user.UserID, "associate-corporate"), "associatingCorporateId", body, nil)
}
