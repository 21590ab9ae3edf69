package warmup

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/ndaonboarding/lib/mycontext"
	"github.com/MarcGrol/ndaonboarding/lib/myerrors"
	"github.com/MarcGrol/ndaonboarding/lib/myhttp"
	"github.com/MarcGrol/ndaonboarding/lib/mylog"
	"github.com/MarcGrol/ndaonboarding/lib/mypublisher"
	"github.com/MarcGrol/ndaonboarding/lib/myuuid"
	"github.com/MarcGrol/ndaonboarding/lib/myvault"
	"github.com/MarcGrol/ndaonboarding/services/docusign/docusignclient"
)

const (
	probeUID = "warmup"
)

type webService struct {
	logger    mylog.Logger
	vault     myvault.VaultReader[docusignclient.AuthData]
	uuider    myuuid.UUIDer
	publisher mypublisher.Publisher
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(vault myvault.VaultReader[docusignclient.AuthData], uuider myuuid.UUIDer, publisher mypublisher.Publisher) *webService {
	logger := mylog.New("warmup")
	return &webService{
		logger:    logger,
		vault:     vault,
		uuider:    uuider,
		publisher: publisher,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/_ah/warmup", s.warmupPage()).Methods("GET")

	err := s.publisher.CreateTopic(c, TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", TopicName, err)
	}

	return nil
}

func (s *webService) warmupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		// establishes the vault connection before real traffic arrives
		_, _, err := s.vault.Get(c, probeUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewUnavailableError(err))
			return
		}

		err = s.publisher.Publish(c, TopicName, WarmupKicked{
			UID: s.uuider.Create(),
		})
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewUnavailableError(err))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Successfully processed warmup request",
		})
	}
}
