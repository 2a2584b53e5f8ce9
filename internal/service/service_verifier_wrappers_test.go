package service_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/MKhiriev/go-secrets-vault/internal/logger"
	"github.com/MKhiriev/go-secrets-vault/internal/mock"
	"github.com/MKhiriev/go-secrets-vault/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCachedSignatureVerifier_VerifiesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mock.NewMockHost(ctrl)
	inner := mock.NewMockSignatureVerifier(ctrl)
	inner.EXPECT().Verify(host).Return(service.Authorized).Times(1)

	cached := service.NewCachedSignatureVerifier().Wrap(inner)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, service.Authorized, cached.Verify(host))
		}()
	}
	wg.Wait()

	// Later hosts are ignored once an outcome is cached.
	assert.Equal(t, service.Authorized, cached.Verify(nil))
}

func TestCachedSignatureVerifier_CachesDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockSignatureVerifier(ctrl)
	inner.EXPECT().Verify(gomock.Any()).Return(service.Denied).Times(1)

	cached := service.NewCachedSignatureVerifier().Wrap(inner)

	assert.Equal(t, service.Denied, cached.Verify(nil))
	assert.Equal(t, service.Denied, cached.Verify(nil))
}

func TestCachedSignatureVerifier_WrapIsIndependent(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mock.NewMockSignatureVerifier(ctrl)
	first.EXPECT().Verify(gomock.Any()).Return(service.Denied)
	second := mock.NewMockSignatureVerifier(ctrl)
	second.EXPECT().Verify(gomock.Any()).Return(service.Authorized)

	wrapper := service.NewCachedSignatureVerifier()

	assert.Equal(t, service.Denied, wrapper.Wrap(first).Verify(nil))
	assert.Equal(t, service.Authorized, wrapper.Wrap(second).Verify(nil))
}

func TestSignatureVerifierWrappers_UnwrappedDenies(t *testing.T) {
	wrappers := map[string]service.SignatureVerifierWrapper{
		"cached": service.NewCachedSignatureVerifier(),
		"logged": service.NewLoggedSignatureVerifier(logger.Nop()),
	}

	for name, w := range wrappers {
		t.Run(name, func(t *testing.T) {
			verifier, ok := w.(service.SignatureVerifier)
			if assert.True(t, ok) {
				assert.Equal(t, service.Denied, verifier.Verify(nil))
			}
		})
	}
}

func TestLoggedSignatureVerifier(t *testing.T) {
	tests := []struct {
		outcome service.Outcome
		message string
		level   string
	}{
		{outcome: service.Authorized, message: "caller verified", level: `"level":"debug"`},
		{outcome: service.Denied, message: "caller rejected", level: `"level":"warn"`},
	}

	for _, tt := range tests {
		t.Run(tt.outcome.String(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			inner := mock.NewMockSignatureVerifier(ctrl)
			inner.EXPECT().Verify(gomock.Any()).Return(tt.outcome)

			var buf bytes.Buffer
			logged := service.NewLoggedSignatureVerifier(logger.NewLoggerTo("test", &buf)).Wrap(inner)

			assert.Equal(t, tt.outcome, logged.Verify(nil))
			assert.Contains(t, buf.String(), tt.message)
			assert.Contains(t, buf.String(), tt.level)
			assert.Contains(t, buf.String(), `"outcome":"`+tt.outcome.String()+`"`)
		})
	}
}
