package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"social-media-api/internal/database"
	"social-media-api/internal/types"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateMessageRequest struct {
	PostedBy        int    `json:"postedBy"`
	MessageText     string `json:"messageText"`
	TimePostedEpoch int64  `json:"timePostedEpoch"`
}

type UpdateMessageRequest struct {
	MessageText string `json:"messageText"`
}

func (s *Server) writeJson(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Errorf("json encode: %v", err)
	}
}

func accountResponse(a database.Account) types.Account {
	return types.Account{
		AccountId: a.Id,
		Username:  a.Username,
	}
}

func messageResponse(m database.Message) types.Message {
	return types.Message{
		MessageId:       m.Id,
		PostedBy:        m.PostedBy,
		MessageText:     m.MessageText,
		TimePostedEpoch: m.TimePostedEpoch,
	}
}

func messagesResponse(msgs []database.Message) []types.Message {
	out := make([]types.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, messageResponse(m))
	}
	return out
}

// messageIdFromPath parses the {messageId} path segment.
func messageIdFromPath(r *http.Request) (int, error) {
	return strconv.Atoi(r.PathValue("messageId"))
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError("invalid request body")
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	account, err := s.accounts.Register(req.Username, req.Password)
	if err != nil {
		errResp := errorResponse(err)
		if errResp.Err != nil {
			s.log.Errorf("register: %v", err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, accountResponse(account))
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError("invalid request body")
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	account, err := s.accounts.Login(req.Username, req.Password)
	if err != nil {
		errResp := errorResponse(err)
		if errResp.Err != nil {
			s.log.Errorf("login: %v", err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, accountResponse(account))
}

func (s *Server) createMessage(w http.ResponseWriter, r *http.Request) {
	var req CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError("invalid request body")
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	message, err := s.messages.Create(database.CreateMessageParams{
		PostedBy:        req.PostedBy,
		MessageText:     req.MessageText,
		TimePostedEpoch: req.TimePostedEpoch,
	})
	if err != nil {
		errResp := errorResponse(err)
		if errResp.Err != nil {
			s.log.Errorf("create message: %v", err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, messageResponse(message))
}

func (s *Server) getAllMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := s.messages.All()
	if err != nil {
		s.log.Errorf("get all messages: %v", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, messagesResponse(messages))
}

func (s *Server) getMessageById(w http.ResponseWriter, r *http.Request) {
	id, err := messageIdFromPath(r)
	if err != nil {
		errResp := NewBadRequestError("invalid message id")
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	message, err := s.messages.ByID(id)
	if err != nil {
		s.log.Errorf("get message %d: %v", id, err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	// an absent message is a 200 with an empty body, not an error
	if message == nil {
		s.writeJson(w, http.StatusOK, nil)
		return
	}

	s.writeJson(w, http.StatusOK, messageResponse(*message))
}

func (s *Server) updateMessage(w http.ResponseWriter, r *http.Request) {
	id, err := messageIdFromPath(r)
	if err != nil {
		errResp := NewBadRequestError("invalid message id")
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req UpdateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError("invalid request body")
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	rows, err := s.messages.UpdateText(id, req.MessageText)
	if err != nil {
		errResp := errorResponse(err)
		if errResp.Err != nil {
			s.log.Errorf("update message %d: %v", id, err)
		}
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, rows)
}

func (s *Server) deleteMessage(w http.ResponseWriter, r *http.Request) {
	id, err := messageIdFromPath(r)
	if err != nil {
		errResp := NewBadRequestError("invalid message id")
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	deleted, err := s.messages.Delete(id)
	if err != nil {
		s.log.Errorf("delete message %d: %v", id, err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	// deleted rows in the body, empty body when nothing was deleted
	if !deleted {
		s.writeJson(w, http.StatusOK, nil)
		return
	}

	s.writeJson(w, http.StatusOK, 1)
}

func (s *Server) getMessagesByUser(w http.ResponseWriter, r *http.Request) {
	accountId, err := strconv.Atoi(r.PathValue("accountId"))
	if err != nil {
		errResp := NewBadRequestError("invalid account id")
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	messages, err := s.messages.ByAccount(accountId)
	if err != nil {
		s.log.Errorf("get messages for account %d: %v", accountId, err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, messagesResponse(messages))
}

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(); err != nil {
		s.log.Errorf("health check: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
