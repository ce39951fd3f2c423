//go:generate mockgen -source=../message_journal.go      -destination=./mock_message_journal.go      -package=mocks
//go:generate mockgen -source=../seen_cache.go           -destination=./mock_seen_cache.go           -package=mocks
//go:generate mockgen -source=../validator.go            -destination=./mock_validator.go            -package=mocks
//go:generate mockgen -source=../message_publisher.go    -destination=./mock_message_publisher.go    -package=mocks
//go:generate mockgen -source=../journal_read_service.go -destination=./mock_journal_read_service.go -package=mocks
//go:generate mockgen -source=../queue_client.go         -destination=./mock_queue_client.go         -package=mocks

package mocks
