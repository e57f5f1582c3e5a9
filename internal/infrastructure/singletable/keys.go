package singletable

import (
	"strings"

	"github.com/Xausdorf/tenant-ledger/internal/domain/entity"
)

const keySeparator = "#"

// TransactionSortKeyPrefix selects every transaction row of a partition.
const TransactionSortKeyPrefix = entity.TransactionEntityName + keySeparator

// AccountPartitionKey groups an account row with all of its transaction rows.
func AccountPartitionKey(tenant, document string) string {
	return tenant + keySeparator + entity.AccountEntityName + keySeparator + document
}

func AccountSortKey(document string) string {
	return entity.AccountEntityName + keySeparator + document
}

func TransactionSortKey(id string) string {
	return TransactionSortKeyPrefix + id
}

func documentFromSortKey(sk string) string {
	return strings.TrimPrefix(sk, entity.AccountEntityName+keySeparator)
}

func transactionIDFromSortKey(sk string) string {
	return strings.TrimPrefix(sk, TransactionSortKeyPrefix)
}
