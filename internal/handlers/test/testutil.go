package test

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/diegoclair/discord-schedule-bot/internal/domain/service"
	"github.com/diegoclair/discord-schedule-bot/internal/handlers"
	"github.com/diegoclair/discord-schedule-bot/internal/logger"
	"github.com/diegoclair/discord-schedule-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ServiceMocks struct {
	CommandServiceMock     *mocks.MockCommandService
	ModalServiceMock       *mocks.MockModalService
	InteractionServiceMock *mocks.MockInteractionService
	SubscribeServiceMock   *mocks.MockSubscribeService
}

// Signer holds the application key pair used to sign test requests.
type Signer struct {
	Public  ed25519.PublicKey
	private ed25519.PrivateKey
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.Handler, signer Signer, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		CommandServiceMock:     mocks.NewMockCommandService(ctrl),
		ModalServiceMock:       mocks.NewMockModalService(ctrl),
		InteractionServiceMock: mocks.NewMockInteractionService(ctrl),
		SubscribeServiceMock:   mocks.NewMockSubscribeService(ctrl),
	}

	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	signer = Signer{Public: pub, private: priv}

	services := &service.Instance{
		Command:     m.CommandServiceMock,
		Modal:       m.ModalServiceMock,
		Interaction: m.InteractionServiceMock,
		Subscribe:   m.SubscribeServiceMock,
	}
	handler = handlers.New(services, pub, logger.New(io.Discard, logger.Options{Silent: true}))

	return
}

// CreateInteractionRequest creates a properly signed interaction request with payload as JSON body.
func CreateInteractionRequest(t *testing.T, signer Signer, payload any) *http.Request {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Signature-Timestamp", timestamp)
	req.Header.Set("X-Signature-Ed25519", signer.Sign(timestamp, body))

	return req
}

func (s Signer) Sign(timestamp string, body []byte) string {
	return hex.EncodeToString(ed25519.Sign(s.private, append([]byte(timestamp), body...)))
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
